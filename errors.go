package routes

import "fmt"

// MissingParamError is returned by Generate when a parameter segment has no value.
type MissingParamError struct {
	Name    string // parameter name, without the ':'
	Pattern string // the full pattern being generated
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required route parameter %q for route %q", e.Name, e.Pattern)
}
