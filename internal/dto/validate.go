package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator configured for the DTO tags.
// Field names in its errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// RegisterValidation only fails on an empty tag or a nil function.
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate checks v against its validate tags.
// The first violation is returned as a *domain.ValidationError wrapping
// domain.ErrValidation.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.NewValidationError("body", err.Error(), domain.ErrValidation)
	}

	fe := fieldErrs[0]
	return domain.NewValidationError(fieldName(fe), describe(fe), domain.ErrValidation)
}

// fieldName returns the JSON path of the field without the struct name,
// e.g. "tags[0]" rather than "ProfileDto.tags[0]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "cannot be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return "cannot be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "lt":
		return "must be in the past"
	case "gt":
		return "must be a positive number"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
