// Package vcard renders contact records as vCard 3.0 text.
package vcard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a required contact field is missing.
var ErrInvalidRecord = errors.New("invalid contact record")

// Contact is the information encoded into a contact QR code. Name, Phone and
// Email are required; Website is optional.
type Contact struct {
	Name    string
	Phone   string
	Email   string
	Website string
}

// Validate checks that every required field is present.
func (c Contact) Validate() error {
	for _, f := range []struct {
		field, value string
	}{
		{"name", c.Name},
		{"phone", c.Phone},
		{"email", c.Email},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRecord, f.field)
		}
	}
	return nil
}

// Build returns the vCard text for c. Field values are embedded as-is; no
// trimming or vCard escaping is applied. Lines are separated by newlines and
// the text ends with END:VCARD.
func Build(c Contact) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + c.Name,
		"TEL:" + c.Phone,
		"EMAIL:" + c.Email,
	}
	if c.Website != "" {
		lines = append(lines, "URL:"+c.Website)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n"), nil
}
