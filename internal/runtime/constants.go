package runtime

const (
	// DefaultNamespace is used when no namespace is configured.
	DefaultNamespace = "default"
)
