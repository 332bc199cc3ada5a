package services

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"todoapi/internal/models"
)

var basicEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError describes a request that failed field validation.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidator returns a validator that also understands the basic_email tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return basicEmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register basic_email validation: %v", err))
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(interface{ Validatable() interface{} }).Validatable()
	}, models.Optional[int]{}, models.Optional[string]{})
	return v
}

// validateStruct runs v over s and converts failures into a *ValidationError.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	var required, email, age bool
	for _, e := range validationErrors {
		switch {
		case e.Tag() == "required":
			required = true
			fields[e.Field()] = "is required"
		case e.Tag() == "basic_email":
			email = true
			fields[e.Field()] = "must look like local@domain.tld"
		case e.Field() == "age":
			age = true
			fields[e.Field()] = "must be between 0 and 120"
		default:
			fields[e.Field()] = fmt.Sprintf("failed on the '%s' tag", e.Tag())
		}
	}

	msg := "Validation failed"
	switch {
	case required:
		msg = "Name and email are required"
	case email:
		msg = "Invalid email format"
	case age:
		msg = "Age must be between 0 and 120"
	default:
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		msg = fmt.Sprintf("Validation failed for: %s", strings.Join(names, ", "))
	}
	return &ValidationError{Message: msg, Fields: fields}
}
