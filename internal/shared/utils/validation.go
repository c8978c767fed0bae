package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
)

var registerOnce sync.Once

// RegisterBindingValidators adds the domain tags to gin's validator and
// reports field names by their JSON tag. Safe to call more than once.
func RegisterBindingValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})

		_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
			_, err := rate.NewTier(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			_, err := billing.ParseCurrency(fl.Field().String())
			return err == nil
		})
	})
}

// BindingError turns a gin bind failure into a validation AppError. It
// returns nil for errors that did not come from request binding.
func BindingError(err error) *errors.AppError {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fe))
		}
		return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		return errors.NewBadRequestError("malformed JSON body")
	case stderrors.As(err, &typeErr):
		return errors.NewBadRequestError("invalid JSON body", fmt.Sprintf("%s has the wrong type", typeErr.Field))
	case stderrors.Is(err, io.EOF):
		return errors.NewBadRequestError("request body is required")
	}
	return nil
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "tier":
		return fmt.Sprintf("%s must be one of [standard high-profile scotus]", field)
	case "currency":
		return fmt.Sprintf("%s must be USD or R$", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
