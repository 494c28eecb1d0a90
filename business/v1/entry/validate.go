package entry

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"reflect"
	"strings"
)

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}()

// ValidateSearch trims the query and checks it is not empty
func ValidateSearch(r SearchRequest) (SearchRequest, error) {
	r.Query = strings.TrimSpace(r.Query)
	return r, check(r)
}

// ValidateNewEntry trims the title and checks both fields. Content is kept as typed.
func ValidateNewEntry(r NewEntryRequest) (NewEntryRequest, error) {
	r.Title = strings.TrimSpace(r.Title)
	return r, check(r)
}

// ValidateEditEntry trims the title and checks both fields. Content is kept as typed.
func ValidateEditEntry(r EditEntryRequest) (EditEntryRequest, error) {
	r.Title = strings.TrimSpace(r.Title)
	return r, check(r)
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "max":
		return "Must be at most " + fe.Param() + " characters."
	case "excludes":
		return "Must not contain \"" + fe.Param() + "\"."
	default:
		return "Invalid value."
	}
}
