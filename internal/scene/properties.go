package scene

// Properties is an unordered set of property names to values, carrying data on Nodes (i.e. a project's link).
type Properties struct {
	props map[string]any
}

// NewProperties returns a new Properties object.
func NewProperties() *Properties {
	return &Properties{map[string]any{}}
}

// Set sets the named property to the value given.
func (props *Properties) Set(name string, value any) {
	props.props[name] = value
}

// Has returns true if the Properties object has properties by all of the names specified, and false otherwise.
func (props *Properties) Has(names ...string) bool {
	for _, name := range names {
		if _, exists := props.props[name]; !exists {
			return false
		}
	}
	return true
}

// Get returns the value of the named property, or nil if it doesn't exist.
func (props *Properties) Get(name string) any {
	return props.props[name]
}

// String returns the named property as a string; an empty string is returned if it is unset or not a string.
func (props *Properties) String(name string) string {
	if s, ok := props.props[name].(string); ok {
		return s
	}
	return ""
}

// Bool returns the named property as a boolean; false is returned if it is unset or not a boolean.
func (props *Properties) Bool(name string) bool {
	b, _ := props.props[name].(bool)
	return b
}

// Remove removes the named property.
func (props *Properties) Remove(name string) {
	delete(props.props, name)
}
