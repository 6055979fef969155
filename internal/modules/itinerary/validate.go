package itinerary

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateCommand is the raw creation input; Date is YYYY-MM-DD.
type CreateCommand struct {
	Destination string `json:"destination" validate:"required,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateCommand returns a *ValidationError with one message list per failing field.
func validateCommand(v *validator.Validate, cmd CreateCommand) error {
	err := v.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Reason: ErrInvalidInput, Fields: map[string][]string{"non_field_errors": {err.Error()}}}
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return &ValidationError{Reason: ErrInvalidInput, Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
