package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern     = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü\s]+$`)
	departmentNamePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü\s\-]+$`)
	freeTextPattern       = regexp.MustCompile(`^[A-Za-z0-9ÁÉÍÓÚáéíóúÑñÜü\s\-\.]+$`)
)

// ValidationError identifies the first field of a record that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("person_name", matches(personNamePattern))
	_ = v.RegisterValidation("department_name", matches(departmentNamePattern))
	_ = v.RegisterValidation("free_text", matches(freeTextPattern))

	return &CustomValidator{
		validator: v,
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateRecord validates i and reports the first offending field as a *ValidationError.
func (cv *CustomValidator) ValidateRecord(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	return &ValidationError{
		Field:   first.Field(),
		Message: message(first),
	}
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	result := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			result[e.Field()] = message(e)
		}
	}

	var single *ValidationError
	if errors.As(err, &single) {
		result[single.Field] = single.Message
	}

	return result
}

func message(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "person_name":
		return field + " must contain only letters and spaces"
	case "department_name":
		return field + " must contain only letters, spaces and hyphens"
	case "free_text":
		return field + " must contain only letters, digits, spaces, hyphens and periods"
	default:
		return field + " is invalid"
	}
}
