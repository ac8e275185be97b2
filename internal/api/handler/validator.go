package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError aggregates per-field failures. Fields entries follow the
// "field: message" shape the error envelope exposes.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string { return "Validation error" }

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator, with the custom card/date rules registered.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("mmyy", validMMYY)
	_ = v.RegisterValidation("pastdate", validPastDate)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

var mmyyPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

func validMMYY(fl validator.FieldLevel) bool {
	return mmyyPattern.MatchString(fl.Field().String())
}

// validPastDate accepts dates up to and including today. An unparsable value
// passes here so the datetime rule reports the format failure alone.
func validPastDate(fl validator.FieldLevel) bool {
	t, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return true
	}
	return !t.After(time.Now())
}

// fieldError converts a single ValidationError into a "field: message" entry.
func fieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email"
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + ": must contain only digits"
	case "datetime":
		return field + ": must be a date in YYYY-MM-DD format"
	case "pastdate":
		return field + ": can't be in the future"
	case "mmyy":
		return field + ": must match the MM/yy format"
	default:
		return fmt.Sprintf("%s: failed validation (%s)", field, fe.Tag())
	}
}

// jsonFieldName lowercases the first rune so messages reference the wire
// field name (birthDate, not BirthDate).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return strings.TrimSpace(string(r))
}
