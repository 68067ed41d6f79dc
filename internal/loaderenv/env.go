// Package loaderenv holds the loader environment: the mutable set of
// variables (autoboot_delay, kernel, boot flags, currdev) shared between the
// configuration file, the menu effects, and the boot invocation.
package loaderenv

// Var is a single environment variable.
type Var struct {
	Name  string
	Value string
}

// Env is an ordered in-memory variable store. Insertion order is preserved
// so listings match the configuration file and the session's set history.
type Env struct {
	values map[string]string
	order  []string
}

// New returns an empty environment.
func New() *Env {
	return &Env{values: make(map[string]string)}
}

// Get looks up a variable. The second return reports whether it is set.
func (e *Env) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// GetDefault returns the variable's value, or fallback when unset.
func (e *Env) GetDefault(name, fallback string) string {
	if v, ok := e.values[name]; ok {
		return v
	}
	return fallback
}

// Set stores a variable, appending new names to the listing order.
func (e *Env) Set(name, value string) {
	if _, ok := e.values[name]; !ok {
		e.order = append(e.order, name)
	}
	e.values[name] = value
}

// Unset removes a variable. Unknown names are a no-op.
func (e *Env) Unset(name string) {
	if _, ok := e.values[name]; !ok {
		return
	}
	delete(e.values, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// All returns every variable in listing order.
func (e *Env) All() []Var {
	vars := make([]Var, 0, len(e.order))
	for _, name := range e.order {
		vars = append(vars, Var{Name: name, Value: e.values[name]})
	}
	return vars
}

// Len reports the number of set variables.
func (e *Env) Len() int {
	return len(e.values)
}
