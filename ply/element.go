package ply

// Element is implemented by any record type the decoder can populate.
//
// For every record the decoder creates a fresh value with the constructor
// passed to the parser, then calls SetProperty once per declared property in
// declaration order. It never reads the value back. An implementation may
// reject a name or value shape it does not expect by returning an error,
// which aborts the decode.
type Element interface {
	SetProperty(name string, value Property) error
}

// DefaultElement is the generic record representation: property name to value.
// It accepts any key.
type DefaultElement map[string]Property

// NewDefaultElement creates an empty DefaultElement.
func NewDefaultElement() DefaultElement {
	return make(DefaultElement)
}

// SetProperty stores value under name, replacing any previous value.
func (e DefaultElement) SetProperty(name string, value Property) error {
	e[name] = value
	return nil
}

// Get returns the value stored under name.
func (e DefaultElement) Get(name string) (Property, bool) {
	p, ok := e[name]
	return p, ok
}
