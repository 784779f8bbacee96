package render

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned for template identifiers outside the
// fixed set.
var ErrUnknownTemplate = errors.New("unknown template")

// Template selects one of the fixed README layouts.
type Template int

const (
	CleanMinimal Template = iota
	FancyAnimated
	ResumeStyle
)

var templateNames = map[Template]string{
	CleanMinimal:  "clean-minimal",
	FancyAnimated: "fancy-animated",
	ResumeStyle:   "resume-style",
}

// String returns the template identifier used on the command line and in
// config files.
func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Template(%d)", int(t))
}

// Templates returns every template in display order.
func Templates() []Template {
	return []Template{CleanMinimal, FancyAnimated, ResumeStyle}
}

// ParseTemplate maps an identifier such as "resume-style" to its Template.
func ParseTemplate(s string) (Template, error) {
	for _, t := range Templates() {
		if templateNames[t] == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of clean-minimal, fancy-animated, resume-style)", ErrUnknownTemplate, s)
}

// Set implements pflag.Value so a Template can be bound to a flag directly.
func (t *Template) Set(s string) error {
	parsed, err := ParseTemplate(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *Template) Type() string {
	return "template"
}
