// Package ui provides UI components for interactive flows
package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// CreateInputGroup creates an input group for a form
func CreateInputGroup(title, placeholder, description string, validator func(string) error, value *string) *huh.Group {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Description(description).
		Value(value)

	if validator != nil {
		input.Validate(validator)
	}

	return huh.NewGroup(input)
}

// CreateConfirmGroup creates a confirm group for a form
func CreateConfirmGroup(title, description, affirmative, negative string, value *bool) *huh.Group {
	return huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative(affirmative).
			Negative(negative).
			Value(value),
	)
}

// CollectWithForm runs a form and wraps its error with context
func CollectWithForm(form *huh.Form, errorMsg string) error {
	if err := form.Run(); err != nil {
		return fmt.Errorf("%s: %w", errorMsg, err)
	}
	return nil
}
