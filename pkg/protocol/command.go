package protocol

// Command describes one remote operation: its wire name and the parameter
// names it accepts.
type Command struct {
	Name     string
	Required []string
	Optional []string
}

// Accepts reports whether key is in the command's allow-list.
func (c Command) Accepts(key string) bool {
	for _, name := range c.Required {
		if name == key {
			return true
		}
	}
	for _, name := range c.Optional {
		if name == key {
			return true
		}
	}
	return false
}

// Validate checks params against the allow-list before anything is sent.
// Unknown keys are reported first, in the order they were supplied.
func (c Command) Validate(params Params) error {
	for _, param := range params {
		if !c.Accepts(param.Key) {
			return &ParameterError{Command: c.Name, Name: param.Key}
		}
	}
	for _, name := range c.Required {
		if _, ok := params.Get(name); !ok {
			return &ParameterError{Command: c.Name, Name: name, Missing: true}
		}
	}
	return nil
}
