package helpers

import (
	"unicode/utf8"

	"rbay-web/internal/weberrors"
)

// Field length limits enforced before any backend call
const (
	NameMinLen        = 3
	NameMaxLen        = 60
	DescriptionMinLen = 3
	DescriptionMaxLen = 600
)

// ValidateNewItem applies the client-side constraints of the item creation
// form. The first violated constraint wins.
func ValidateNewItem(form NewItemForm) error {
	if form.Name == "" || form.Description == "" {
		return weberrors.ErrMissingField
	}
	if n := utf8.RuneCountInString(form.Name); n < NameMinLen || n > NameMaxLen {
		return weberrors.ErrNameLength
	}
	if n := utf8.RuneCountInString(form.Description); n < DescriptionMinLen || n > DescriptionMaxLen {
		return weberrors.ErrDescriptionLength
	}
	if !ValidDuration(form.Duration) {
		return weberrors.ErrInvalidDuration
	}
	return nil
}

// ValidDuration reports whether the duration is one of the selector options
func ValidDuration(seconds int) bool {
	for _, opt := range DurationOptions {
		if opt.Seconds == seconds {
			return true
		}
	}
	return false
}
