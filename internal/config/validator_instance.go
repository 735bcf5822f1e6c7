package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML key so errors point at the document.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return widget.IsHexColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument checks the structural rules of a document: colors, enum
// values and header length. It says nothing about contact ids.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return swerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return widget.IsHexColor(s)
}
