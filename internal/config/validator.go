package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/droidcraft/internal/project"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates droidcraft configuration.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := project.RegisterCustomValidators(v); err != nil {
		return nil, fmt.Errorf("registering project validators: %w", err)
	}
	if err := v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
		_, err := project.Get(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("registering preset validator: %w", err)
	}
	if err := v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
		_, _, err := net.SplitHostPort(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("registering listen_addr validator: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	if err := v.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range verrs {
			field := strings.TrimPrefix(fe.Namespace(), "Config.")
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fieldMessage(fe),
			})
		}
	}

	if cfg.Defaults.MinSdk > 0 && cfg.Defaults.TargetSdk > 0 && cfg.Defaults.MinSdk > cfg.Defaults.TargetSdk {
		errs = append(errs, ValidationError{
			Field:   "defaults.minSdk",
			Message: "must not exceed defaults.targetSdk",
		})
	}

	if cfg.Output.Dir != "" && strings.TrimSpace(cfg.Output.Dir) == "" {
		errs = append(errs, ValidationError{
			Field:   "output.dir",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile validates a configuration file at the given path.
// Unknown keys are reported as errors.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return ValidationErrors{{Message: "parsing YAML: " + err.Error()}}
	}

	return v.Validate(cfg)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "android_package":
		return "must be a dotted lowercase package prefix such as com.example"
	case "preset":
		return fmt.Sprintf("unknown preset %q (valid presets: %s)", fe.Value(), strings.Join(project.Names(), ", "))
	case "listen_addr":
		return fmt.Sprintf("invalid listen address %q, expected host:port", fe.Value())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "cannot exceed " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
