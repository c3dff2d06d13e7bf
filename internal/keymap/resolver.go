package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action // key -> action
}

// NewResolver creates a resolver from bindings. When a key appears in
// several bindings the last one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}
