package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ratfit/service"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// Struct validates obj and returns one FieldError per failed rule.
func (rv *requestValidator) Struct(obj any) []service.FieldError {
	err := rv.v.Struct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []service.FieldError{{Field: "body", Message: err.Error()}}
	}
	fields := make([]service.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, service.FieldError{
			Field:   fieldPath(e),
			Message: fieldMessage(e),
		})
	}
	return fields
}

// fieldPath drops the top-level struct name from the namespace, so
// "SignupRequest.awayGymIds[1]" becomes "awayGymIds[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
}

func decodeErrors(err error) []service.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []service.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, received %s", typeErr.Type.String(), typeErr.Value),
		}}
	}
	return []service.FieldError{{Field: "body", Message: "malformed JSON"}}
}
