package project

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/opmodel/droidcraft/internal/errors"
)

var (
	projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	packageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
)

// FieldError describes one invalid configuration field.
type FieldError struct {
	// Field is the JSON name of the field, e.g. "packageName".
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// ValidationErrors holds every failing field of one configuration, in
// declaration order.
type ValidationErrors []FieldError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "\n")
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Fields returns the names of the failing fields.
func (e ValidationErrors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}

// fieldLabels are the human names used in messages.
var fieldLabels = map[string]string{
	"projectName":      "Project name",
	"packageName":      "Package name",
	"minSdkVersion":    "Minimum SDK version",
	"targetSdkVersion": "Target SDK version",
	"architecture":     "Architecture",
	"ui":               "UI toolkit",
	"networking":       "Networking library",
	"database":         "Database library",
	"di":               "Dependency injection",
	"imageLoading":     "Image loading library",
	"async":            "Async library",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := RegisterCustomValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterCustomValidators registers the Android naming rules on v.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("android_project", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("android_package", func(fl validator.FieldLevel) bool {
		return packageNamePattern.MatchString(fl.Field().String())
	})
}

// Validate checks every field of c and returns ValidationErrors, or nil.
func Validate(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe.Field(), fe.Tag(), fe.Param())})
	}
	return out
}

// ValidateField checks a single wizard input against the rules of the named
// field. Integer fields accept their decimal text form.
func ValidateField(field, value string) error {
	sf, ok := fieldByJSONName(field)
	if !ok {
		return fmt.Errorf("unknown field %q: %w", field, oerrors.ErrNotFound)
	}

	var v any = value
	if sf.Type.Kind() == reflect.Int {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return FieldError{Field: field, Message: fieldLabels[field] + " must be a number"}
		}
		v = n
	}

	err := validate.Var(v, sf.Tag.Get("validate"))
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return FieldError{Field: field, Message: message(field, verrs[0].Tag(), verrs[0].Param())}
	}
	return err
}

func fieldByJSONName(name string) (reflect.StructField, bool) {
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func message(field, tag, param string) string {
	label := fieldLabels[field]
	if label == "" {
		label = field
	}

	switch tag {
	case "required":
		return label + " is required"
	case "android_project":
		return "Project name must start with a letter and contain only letters, numbers, and underscores"
	case "android_package":
		return "Package name must be in format: com.example.myapp"
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	default:
		return label + " is invalid"
	}
}
