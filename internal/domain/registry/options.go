package registry

// Option applies a configuration option to the in-memory registry.
type Option func(*inMemoryRegistry)

// WithDefaultModel sets the model name used when requests omit model_name
// or ask for a name that was never registered.
func WithDefaultModel(name string) Option {
	return func(r *inMemoryRegistry) {
		if name != "" {
			r.defaultName = name
		}
	}
}
