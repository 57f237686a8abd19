// Package runtime holds per-invocation state and lazily initialized
// clients for chartkit commands.
package runtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/chartkit-dev/chartkit/internal/chart"
	"github.com/chartkit-dev/chartkit/internal/k8s"
	"github.com/chartkit-dev/chartkit/internal/naming"
)

// runtimeKey is a private context key for storing the Runtime in context.
type runtimeKey struct{}

// Runtime carries the inputs collected from flags and memoizes the chart
// context and cluster client derived from them.
type Runtime struct {
	loadOpts   chart.LoadOptions
	namespace  string
	kubeconfig string

	chartCtx *naming.ChartContext
	k8sCli   *k8s.Client
	mu       sync.Mutex

	// k8sFactory creates the cluster client; replaceable for tests.
	k8sFactory func(*Runtime) (*k8s.Client, error)
}

// Option defines a functional option for configuring Runtime.
type Option func(*Runtime)

// WithLoadOptions sets the chart context load inputs.
func WithLoadOptions(opts chart.LoadOptions) Option {
	return func(r *Runtime) {
		r.loadOpts = opts
	}
}

// WithNamespace sets the Kubernetes namespace.
func WithNamespace(namespace string) Option {
	return func(r *Runtime) {
		r.namespace = namespace
	}
}

// WithKubeconfig sets the kubeconfig file path.
func WithKubeconfig(kubeconfig string) Option {
	return func(r *Runtime) {
		r.kubeconfig = kubeconfig
	}
}

// WithKubernetesFactory sets a custom cluster client factory for testing.
func WithKubernetesFactory(factory func(*Runtime) (*k8s.Client, error)) Option {
	return func(r *Runtime) {
		r.k8sFactory = factory
	}
}

func defaultKubernetesFactory(r *Runtime) (*k8s.Client, error) {
	return k8s.NewClientForConfig(r.kubeconfig, r.Namespace())
}

// New constructs a Runtime with functional options.
func New(options ...Option) *Runtime {
	r := &Runtime{
		k8sFactory: defaultKubernetesFactory,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// WithRuntime returns a new context carrying the provided runtime.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// FromRuntime extracts a Runtime from the context, or nil if absent.
func FromRuntime(ctx context.Context) *Runtime {
	if v := ctx.Value(runtimeKey{}); v != nil {
		if rt, ok := v.(*Runtime); ok {
			return rt
		}
	}
	return nil
}

// ChartContext loads and memoizes the chart context for this invocation.
func (r *Runtime) ChartContext() (naming.ChartContext, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chartCtx != nil {
		return *r.chartCtx, nil
	}

	chartCtx, err := chart.Load(r.loadOpts)
	if err != nil {
		return naming.ChartContext{}, fmt.Errorf("failed to load chart context: %w", err)
	}
	r.chartCtx = &chartCtx
	return chartCtx, nil
}

// Kubernetes returns a memoized cluster client configured for this runtime.
func (r *Runtime) Kubernetes() (*k8s.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.k8sCli != nil {
		return r.k8sCli, nil
	}

	cli, err := r.k8sFactory(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client (namespace=%q, kubeconfig=%q): %w",
			r.namespace, r.kubeconfig, err)
	}
	r.k8sCli = cli
	return r.k8sCli, nil
}

// Namespace returns the configured namespace, or "default" if none is set.
func (r *Runtime) Namespace() string {
	if r.namespace != "" {
		return r.namespace
	}
	return DefaultNamespace
}

// Close releases state held by the runtime. Safe to call multiple times.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chartCtx = nil
	r.k8sCli = nil

	return nil
}
