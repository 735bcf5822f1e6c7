package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

// convertValidationError normalizes validator errors into widget document validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return swerrors.NewValidationError(field, describe(ve), err)
	}

	return swerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving a
// dotted path of YAML keys such as platforms.email.color.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hex_color":
		return fmt.Sprintf("%q is not a #RRGGBB color", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
}
