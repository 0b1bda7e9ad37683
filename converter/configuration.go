package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON field names so errors point at what the user edited
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseConfiguration decodes and validates configuration JSON in one pass.
// Every failure is a *ConfigurationError.
func ParseConfiguration(data []byte) (Configuration, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Configuration{}, &ConfigurationError{Reason: "empty document"}
	}

	var raw rawConfiguration
	if err := json.Unmarshal(data, &raw); err != nil {
		return Configuration{}, decodeError(err)
	}
	if err := validate.Struct(raw); err != nil {
		return Configuration{}, validationError(err)
	}

	cfg := Configuration{
		SplitIDs:               raw.SplitIDs,
		Ordered:                *raw.Ordered,
		EndTriggeringAutosplit: *raw.EndTriggeringAutosplit,
		CategoryName:           raw.CategoryName,
		GameName:               raw.GameName,
	}
	if raw.Variables != nil {
		cfg.Variables = *raw.Variables
	}
	return cfg, nil
}

// Validate checks a Configuration built in code. ParseConfiguration output
// always passes.
func (c Configuration) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ConfigurationError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("must be %s, got %s", jsonKind(typeErr.Type), typeErr.Value),
			Err:    err,
		}
	}
	return &ConfigurationError{Reason: fmt.Sprintf("not valid JSON: %v", err), Err: err}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Reason: err.Error(), Err: err}
	}
	fe := verrs[0]
	reason := fmt.Sprintf("failed %q validation", fe.Tag())
	if fe.Tag() == "required" {
		reason = "is required"
	}
	return &ConfigurationError{Field: fe.Field(), Reason: reason, Err: err}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return t.String()
	}
}
