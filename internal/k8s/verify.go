// Copyright 2025 The Chartkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package k8s

import (
	"context"
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

// Mismatch is one label on a live object that differs from the computed set.
type Mismatch struct {
	Key  string `json:"key" yaml:"key"`
	Want string `json:"want" yaml:"want"`
	Got  string `json:"got" yaml:"got"`

	// Selector marks a drifted selector label. Those cannot be corrected
	// in place: selectors are immutable once a workload exists.
	Selector bool `json:"selector" yaml:"selector"`
}

// Report is the verification result for one live object.
type Report struct {
	Kind       string     `json:"kind" yaml:"kind"`
	Name       string     `json:"name" yaml:"name"`
	Namespace  string     `json:"namespace" yaml:"namespace"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// InSync reports whether the object's labels match the computed set.
func (r Report) InSync() bool {
	return len(r.Mismatches) == 0
}

// diffLabels compares live labels against the computed set. Only computed
// keys are checked; extra labels on the object are the owner's business.
func diffLabels(want, got map[string]string, selector map[string]string) []Mismatch {
	var mismatches []Mismatch
	for key, wantValue := range want {
		gotValue, ok := got[key]
		if ok && gotValue == wantValue {
			continue
		}
		_, isSelector := selector[key]
		mismatches = append(mismatches, Mismatch{
			Key:      key,
			Want:     wantValue,
			Got:      gotValue,
			Selector: isSelector,
		})
	}
	return mismatches
}

// VerifyLabels lists the Deployments, Services and ServiceAccounts selected
// by the resolved selector labels and reports how each object's labels
// compare to the computed common label set.
func (c *Client) VerifyLabels(ctx context.Context, chartCtx naming.ChartContext) ([]Report, error) {
	selectorString, err := BuildSelector(chartCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to build selector: %w", err)
	}

	want := naming.CommonLabels(chartCtx)
	selector := naming.SelectorLabels(chartCtx)
	listOpts := metav1.ListOptions{LabelSelector: selectorString}

	var reports []Report

	deployments, err := c.clientset.AppsV1().Deployments(c.namespace).List(ctx, listOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	for _, d := range deployments.Items {
		reports = append(reports, Report{
			Kind:       "Deployment",
			Name:       d.Name,
			Namespace:  d.Namespace,
			CreatedAt:  d.CreationTimestamp.Time,
			Mismatches: diffLabels(want, d.Labels, selector),
		})
	}

	services, err := c.clientset.CoreV1().Services(c.namespace).List(ctx, listOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	for _, svc := range services.Items {
		reports = append(reports, Report{
			Kind:       "Service",
			Name:       svc.Name,
			Namespace:  svc.Namespace,
			CreatedAt:  svc.CreationTimestamp.Time,
			Mismatches: diffLabels(want, svc.Labels, selector),
		})
	}

	serviceAccounts, err := c.clientset.CoreV1().ServiceAccounts(c.namespace).List(ctx, listOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list service accounts: %w", err)
	}
	for _, sa := range serviceAccounts.Items {
		reports = append(reports, Report{
			Kind:       "ServiceAccount",
			Name:       sa.Name,
			Namespace:  sa.Namespace,
			CreatedAt:  sa.CreationTimestamp.Time,
			Mismatches: diffLabels(want, sa.Labels, selector),
		})
	}

	return reports, nil
}
