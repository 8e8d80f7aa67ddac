// Package validation holds the pure payload checks that run before any
// store call. Everything here is side-effect free.
package validation

import (
	"fmt"
	"regexp"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// OrderInput checks a booking payload. Presence is checked before
// format so an absent field never reaches the regex.
func OrderInput(in domain.CreateOrderInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if !nameRe.MatchString(in.Name) {
		return fmt.Errorf("%w: name must contain letters only", domain.ErrInvalidFormat)
	}

	if in.Phone == "" {
		return fmt.Errorf("%w: phone", domain.ErrMissingField)
	}
	if !phoneRe.MatchString(in.Phone) {
		return fmt.Errorf("%w: phone must contain digits only", domain.ErrInvalidFormat)
	}

	if len(in.Items) == 0 {
		return fmt.Errorf("%w: items", domain.ErrMissingField)
	}
	for i, item := range in.Items {
		if item.LessonID <= 0 {
			return fmt.Errorf("%w: items[%d].lessonId must be a positive integer", domain.ErrInvalidItem, i)
		}
		if item.Qty <= 0 {
			return fmt.Errorf("%w: items[%d].qty must be a positive integer", domain.ErrInvalidItem, i)
		}
	}

	return nil
}

// Patch checks a lesson partial update. Only space carries a value
// invariant; other fields are patched as-is.
func Patch(p domain.LessonPatch) error {
	if p.IsEmpty() {
		return domain.ErrEmptyUpdate
	}
	if p.Space != nil && *p.Space < 0 {
		return fmt.Errorf("%w: space must be >= 0", domain.ErrInvalidField)
	}
	return nil
}
