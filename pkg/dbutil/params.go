package dbutil

import (
	"database/sql"
	"strings"
)

// Direction describes how a parameter is passed to the driver.
type Direction int

const (
	Input Direction = iota
	Output
	InputOutput
)

func (d Direction) String() string {
	switch d {
	case Output:
		return "output"
	case InputOutput:
		return "input/output"
	default:
		return "input"
	}
}

// Parameter is a single command argument.
// Output parameters carry the destination pointer in Value.
type Parameter struct {
	Name      string
	Value     any
	Direction Direction
}

func (p Parameter) arg() any {
	switch p.Direction {
	case Output:
		return sql.Named(p.Name, sql.Out{Dest: p.Value})
	case InputOutput:
		return sql.Named(p.Name, sql.Out{Dest: p.Value, In: true})
	}
	if p.Name == "" {
		return p.Value
	}
	return sql.Named(p.Name, p.Value)
}

// ParameterSet is an ordered collection of command parameters.
// A nil *ParameterSet is valid and holds no parameters.
type ParameterSet struct {
	params []Parameter
	err    error
}

// NewParameterSet creates an empty parameter set.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{}
}

// Positional appends unnamed input values in order.
func (s *ParameterSet) Positional(values ...any) *ParameterSet {
	for _, v := range values {
		s.params = append(s.params, Parameter{Value: v})
	}
	return s
}

// Add appends a named input parameter.
func (s *ParameterSet) Add(name string, value any) *ParameterSet {
	s.params = append(s.params, Parameter{Name: name, Value: value})
	return s
}

// AddOut appends an output parameter. The driver writes the returned value to dest.
func (s *ParameterSet) AddOut(name string, dest any) *ParameterSet {
	return s.addOut(name, dest, Output)
}

// AddInOut appends a parameter whose current value is sent to the driver
// and then replaced by the value the driver returns.
func (s *ParameterSet) AddInOut(name string, dest any) *ParameterSet {
	return s.addOut(name, dest, InputOutput)
}

func (s *ParameterSet) addOut(name string, dest any, dir Direction) *ParameterSet {
	if dest == nil && s.err == nil {
		s.err = ErrNilDestination
	}
	s.params = append(s.params, Parameter{Name: name, Value: dest, Direction: dir})
	return s
}

// Get returns the parameter with the given name, compared case-insensitively.
func (s *ParameterSet) Get(name string) (Parameter, bool) {
	if s == nil {
		return Parameter{}, false
	}
	for _, p := range s.params {
		if p.Name != "" && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Parameter{}, false
}

// At returns the parameter at index i.
func (s *ParameterSet) At(i int) Parameter {
	return s.params[i]
}

// Len returns the number of parameters.
func (s *ParameterSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.params)
}

// Args converts the set into arguments accepted by database/sql.
func (s *ParameterSet) Args() []any {
	if s == nil {
		return nil
	}
	args := make([]any, 0, len(s.params))
	for _, p := range s.params {
		args = append(args, p.arg())
	}
	return args
}

// Err reports a construction error, such as an output parameter without a destination.
func (s *ParameterSet) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}
