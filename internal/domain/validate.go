package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// InvalidRangeError reports a date range whose end does not come after its start.
type InvalidRangeError struct {
	Start, End time.Time
}

func (e *InvalidRangeError) Error() string {
	return "end date must be after start date"
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidInput }

// MissingFieldsError lists every required field that was missing or empty,
// not just the first one found.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidEmailError reports a syntactically invalid email address.
type InvalidEmailError struct {
	Address string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Address)
}

func (e *InvalidEmailError) Is(target error) bool { return target == ErrInvalidInput }

// ValidateDateRange fails when end is not strictly after start.
func ValidateDateRange(start, end time.Time) error {
	if !end.After(start) {
		return &InvalidRangeError{Start: start, End: end}
	}
	return nil
}

// MissingFields returns every key of required whose value in fields is
// missing or blank, preserving the order of required.
func MissingFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(fields[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ValidateRequired fails with a MissingFieldsError naming all absent keys.
func ValidateRequired(fields map[string]string, required []string) error {
	if missing := MissingFields(fields, required); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// ValidateEmail fails when the address does not match a standard syntactic
// email pattern. It performs no DNS or deliverability checks.
func ValidateEmail(address string) error {
	if !emailRegexp.MatchString(strings.TrimSpace(address)) {
		return &InvalidEmailError{Address: address}
	}
	return nil
}
