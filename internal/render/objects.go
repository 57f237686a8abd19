// Package render turns a resolved chart context into Kubernetes object
// metadata and manifest documents.
package render

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

// ObjectMeta builds the metadata block shared by all managed objects:
// the fully-qualified name plus the common label set.
func ObjectMeta(ctx naming.ChartContext) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:   naming.FullName(ctx),
		Labels: naming.CommonLabels(ctx),
	}
}

// ServiceAccount builds a service account skeleton. The name honors the
// service account override rather than the plain fullname.
func ServiceAccount(ctx naming.ChartContext) *corev1.ServiceAccount {
	meta := ObjectMeta(ctx)
	meta.Name = naming.ServiceAccountName(ctx)
	return &corev1.ServiceAccount{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ServiceAccount",
		},
		ObjectMeta: meta,
	}
}

// Service builds a service skeleton whose selector is the stable selector
// label set.
func Service(ctx naming.ChartContext) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: ObjectMeta(ctx),
		Spec: corev1.ServiceSpec{
			Selector: naming.SelectorLabels(ctx),
			Ports: []corev1.ServicePort{
				{Name: "http", Port: 80},
			},
		},
	}
}

// Deployment builds a deployment skeleton. Selector and pod template labels
// use the selector label set only; the full label set goes on the object
// itself, where labels stay mutable.
func Deployment(ctx naming.ChartContext) *appsv1.Deployment {
	selector := naming.SelectorLabels(ctx)
	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: ObjectMeta(ctx),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(int32(1)),
			Selector: &metav1.LabelSelector{MatchLabels: selector},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: selector},
			},
		},
	}
}

// Manifests renders the skeleton objects as a multi-document YAML stream.
func Manifests(ctx naming.ChartContext) ([]byte, error) {
	objects := []any{
		ServiceAccount(ctx),
		Service(ctx),
		Deployment(ctx),
	}

	docs := make([]string, 0, len(objects))
	for _, obj := range objects {
		data, err := yaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal object: %w", err)
		}
		docs = append(docs, string(data))
	}

	return []byte(strings.Join(docs, "---\n")), nil
}
