package env

import (
	"encoding"
	"fmt"
	"strings"
)

type Environment string

var _ encoding.TextUnmarshaler = (*Environment)(nil)

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }

func (e *Environment) UnmarshalText(text []byte) error {
	switch v := Environment(strings.ToLower(string(text))); v {
	case Development, Production:
		*e = v
		return nil
	default:
		return fmt.Errorf("invalid environment: %q (valid: development, production)", string(text))
	}
}
