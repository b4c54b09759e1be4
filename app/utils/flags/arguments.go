package flags

// Arguments represent options selected by a user, as returned by Registry.Parse.
// Arguments are not modified after Parse returns.
type Arguments struct {
	registry *Registry

	// values of provided options keyed by option name.
	values map[string][]string

	// names of provided options in the order of first appearance.
	names []string

	// args are positional arguments.
	args []string
}

func newArguments(registry *Registry) *Arguments {
	return &Arguments{
		registry: registry,
		values:   make(map[string][]string),
	}
}

// set records values of the option.
// Single options keep the last provided value, Multiple options accumulate values.
func (a *Arguments) set(opt Option, values []string) {
	current, exists := a.values[opt.Name]
	if !exists {
		a.names = append(a.names, opt.Name)
	}

	if opt.Arity == Single {
		a.values[opt.Name] = values[len(values)-1:]
		return
	}

	a.values[opt.Name] = append(current, values...)
}

// Has returns true if option with the given name was provided.
func (a *Arguments) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Value returns value of a Single option.
// Empty string is returned when the option was not provided.
func (a *Arguments) Value(name string) (string, error) {
	opt, err := a.lookup(name)
	if err != nil {
		return "", err
	}

	if opt.Arity != Single {
		return "", &TypeMismatchError{Option: name, Arity: opt.Arity}
	}

	v, ok := a.values[name]
	if !ok {
		return "", nil
	}

	return v[0], nil
}

// Values returns values of the option in the order they were provided.
// For Single options, a slice with one element is returned.
// Nil is returned when the option was not provided.
func (a *Arguments) Values(name string) ([]string, error) {
	if _, err := a.lookup(name); err != nil {
		return nil, err
	}

	v, ok := a.values[name]
	if !ok {
		return nil, nil
	}

	return append([]string(nil), v...), nil
}

// Names returns names of provided options in the order of their first appearance.
func (a *Arguments) Names() []string {
	return append([]string(nil), a.names...)
}

// Args returns positional arguments.
func (a *Arguments) Args() []string {
	return append([]string(nil), a.args...)
}

func (a *Arguments) lookup(name string) (Option, error) {
	opt, ok := a.registry.Lookup(name)
	if !ok {
		return Option{}, &ParseError{Option: name, Err: ErrUnknownOption}
	}

	return opt, nil
}
