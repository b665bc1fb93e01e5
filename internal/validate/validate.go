// Package validate wraps a shared go-playground validator with the site's
// custom tags and turns the first failure into a user-facing message.
package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"dj-site/internal/models"
)

var (
	global       *validator.Validate
	contactEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var themes = map[string]bool{"Light": true, "Dark": true, "Auto": true}

const (
	MsgInvalidEmail  = "Invalid email format"
	MsgInvalidType   = `Type must be "niceText" or "runningText"`
	MsgInvalidStatus = `Status must be "new" or "read"`
	MsgInvalidTheme  = `Theme must be "Light", "Dark" or "Auto"`
	MsgUnknown       = "Invalid value"
)

func init() {
	SetValidator(New())
}

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldLabel)
	_ = v.RegisterValidation("contactemail", validateContactEmail)
	_ = v.RegisterValidation("eventtype", validateEventType)
	_ = v.RegisterValidation("messagestatus", validateMessageStatus)
	_ = v.RegisterValidation("theme", validateTheme)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

// fieldLabel prefers an explicit `label` tag, then the JSON name.
func fieldLabel(f reflect.StructField) string {
	if l := f.Tag.Get("label"); l != "" {
		return l
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return Email(fl.Field().String())
}

func validateEventType(fl validator.FieldLevel) bool {
	return models.EventType(fl.Field().String()).Valid()
}

func validateMessageStatus(fl validator.FieldLevel) bool {
	return models.MessageStatus(fl.Field().String()).Valid()
}

func validateTheme(fl validator.FieldLevel) bool {
	return themes[fl.Field().String()]
}

// Email is the address check used by the contact form and registration.
func Email(s string) bool {
	return contactEmail.MatchString(s)
}

// FieldError is the first failing field of a validated struct.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func Struct(ctx context.Context, s any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, s))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}
	fe := vErrors[0]
	return &FieldError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	label := upperFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "contactemail", "email":
		return MsgInvalidEmail
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
		}
		return fmt.Sprintf("%s must have at least %s items", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
		}
		return fmt.Sprintf("%s must have at most %s items", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lt", "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "eventtype":
		return MsgInvalidType
	case "messagestatus":
		return MsgInvalidStatus
	case "theme":
		return MsgInvalidTheme
	case "hexcolor":
		return label + " must be a hex color"
	case "url":
		return label + " must be a URL"
	default:
		return MsgUnknown + ": " + fe.Field()
	}
}

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
