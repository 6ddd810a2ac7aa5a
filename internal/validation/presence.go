package validation

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// exactKeys rewrites raw so that objects only carry keys matching the json
// names of t byte for byte. encoding/json folds case when matching keys, so
// without this pass {"BudgetTier":"mid"} would satisfy a budgetTier field.
// Every field is required unless it carries a `default` tag; the first
// missing or null field is reported.
func exactKeys(raw []byte, t reflect.Type, path []string) ([]byte, *Error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if reflect.PointerTo(t).Implements(unmarshalerType) || trimmed[0] != '{' {
			return raw, nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return raw, nil
		}

		out := make(map[string]json.RawMessage, len(obj))
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, ok := jsonName(f)
			if !ok {
				continue
			}
			fieldPath := append(path[:len(path):len(path)], name)

			v, present := obj[name]
			if !present {
				if f.Tag.Get("default") != "" {
					continue
				}
				return nil, &Error{Message: "Required", Field: strings.Join(fieldPath, ".")}
			}
			if string(bytes.TrimSpace(v)) == "null" && f.Type.Kind() != reflect.Pointer {
				return nil, &Error{
					Message: "Expected " + jsonKind(f.Type) + ", received null",
					Field:   strings.Join(fieldPath, "."),
				}
			}

			nv, verr := exactKeys(v, f.Type, fieldPath)
			if verr != nil {
				return nil, verr
			}
			out[name] = nv
		}

		b, err := json.Marshal(out)
		if err != nil {
			return raw, nil
		}
		return b, nil

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 || trimmed[0] != '[' {
			return raw, nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return raw, nil
		}
		for i := range items {
			nv, verr := exactKeys(items[i], t.Elem(), append(path[:len(path):len(path)], strconv.Itoa(i)))
			if verr != nil {
				return nil, verr
			}
			items[i] = nv
		}
		b, err := json.Marshal(items)
		if err != nil {
			return raw, nil
		}
		return b, nil

	default:
		return raw, nil
	}
}

func jsonName(f reflect.StructField) (string, bool) {
	if f.PkgPath != "" {
		return "", false
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}
