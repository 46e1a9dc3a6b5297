package utils

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/go-playground/validator/v10"
)

// FieldErrors converts gin binding failures into the envelope's per-field
// errors array. Returns nil for errors that are not validator failures
// (e.g. malformed JSON), which callers report as a plain message instead.
func FieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// jsonFieldName lower-cases the leading rune so StartDate surfaces as
// startDate, matching the wire field names.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
