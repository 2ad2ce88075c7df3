package vkf

import "fmt"

// InvalidParameterError reports a filter parameter outside its domain:
// lambda outside (0,1), or a non-positive v0 or noise parameter.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("vkf: parameter %s = %v out of domain", e.Name, e.Value)
}
