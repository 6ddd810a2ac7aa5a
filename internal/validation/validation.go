// Package validation decodes JSON bodies and reports the first schema
// violation as a message plus dotted field path.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Error is the first problem found in a request body.
type Error struct {
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

var (
	setupOnce  sync.Once
	indexRegex = regexp.MustCompile(`\[(\d+)\]`)
)

// Setup makes gin's validator report json field names. It is safe to call
// more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _ := jsonName(fld)
			return name
		})
	})
}

// Decode parses body into obj and validates it. An empty body is treated as
// an empty object so missing fields are reported as such. Keys must match the
// json names exactly.
func Decode(body []byte, obj any) *Error {
	Setup()

	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		body = []byte("{}")
	case string(trimmed) == "null":
		return &Error{Message: "Expected object, received null"}
	}

	body, verr := exactKeys(body, reflect.TypeOf(obj), nil)
	if verr != nil {
		return verr
	}

	if err := json.Unmarshal(body, obj); err != nil {
		return fromDecodeError(err)
	}

	if d, ok := obj.(interface{ ApplyDefaults() }); ok {
		d.ApplyDefaults()
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return fromValidationError(err)
	}
	return nil
}

func fromDecodeError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &Error{
			Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
			Field:   typeErr.Field,
		}
	}
	return &Error{Message: "Invalid JSON body"}
}

func fromValidationError(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Message: err.Error()}
	}

	fe := verrs[0]
	return &Error{Message: message(fe), Field: fieldPath(fe.Namespace())}
}

// fieldPath turns "GenerationResult.breakdown[0].category" into
// "breakdown.0.category".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	} else {
		return ""
	}
	return indexRegex.ReplaceAllString(namespace, ".$1")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		options := strings.Fields(fe.Param())
		quoted := make([]string, len(options))
		for i, o := range options {
			quoted[i] = "'" + o + "'"
		}
		return fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", strings.Join(quoted, " | "), fe.Value())
	default:
		return fmt.Sprintf("Invalid value (failed %s)", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
