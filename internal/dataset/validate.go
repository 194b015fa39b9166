package dataset

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	dasherrors "github.com/alexisbeaulieu97/countrydash/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their serialized name so errors match the source file.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every record and rejects duplicate country names.
func Validate(countries []country.Country) error {
	v := validatorInstance()
	seen := make(map[string]int, len(countries))

	for i, c := range countries {
		if err := v.Struct(c); err != nil {
			return convertValidationError(i, err)
		}

		key := strings.ToLower(c.Name)
		if first, exists := seen[key]; exists {
			return dasherrors.NewValidationError(
				fieldForCountry(i, "name"),
				fmt.Sprintf("duplicate country %q (first defined at index %d)", c.Name, first),
				nil,
			)
		}
		seen[key] = i
	}

	return nil
}

func convertValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldForCountry(index, ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return dasherrors.NewValidationError(field, msg, err)
	}

	return dasherrors.NewValidationError(fmt.Sprintf("countries[%d]", index), err.Error(), err)
}

func fieldForCountry(index int, field string) string {
	return fmt.Sprintf("countries[%d].%s", index, field)
}
