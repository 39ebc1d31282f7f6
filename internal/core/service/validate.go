package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

// validate is shared by every submission path. validator.Validate is
// goroutine-safe and caches struct metadata on first use.
var validate = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names so messages match the remote contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The plain required rule accepts " "; the submission policy treats
	// whitespace-only values as empty.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// MissingFields returns the wire names of every required record field that is
// empty or whitespace-only, in declaration order. An empty result means the
// record is submittable. The id field is never checked; the server owns it.
func MissingFields(rec domain.Record) []string {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	// Struct input guarantees ValidationErrors here.
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{"record"}
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}
