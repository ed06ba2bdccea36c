package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError describes one failed field rule
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the JSON name of the failing field
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the rule that failed
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the rule parameter, if any
func (e *ValidationError) Param() string {
	return e.param
}

func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects every failed rule of one struct
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field failures
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// HasField reports whether field failed any rule
func (ve *RequestValidationError) HasField(field string) bool {
	for _, err := range ve.errors {
		if err.field == field {
			return true
		}
	}
	return false
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the process-wide validator instance
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		// "required" accepts whitespace-only strings
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank: %v", err))
		}
	})

	return validate
}

// ValidateStruct validates s and returns nil when every rule passes
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
}

var errorMessageWithParam = map[string]string{
	"max": "%s must be at most %s characters",
	"min": "%s must be at least %s characters",
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field())
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
