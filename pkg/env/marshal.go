package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrNotStruct = errors.New("env: value is not a struct")

// MarshalEnv renders every env-tagged field of c as KEY=value lines, in field
// order. c may be a struct or a pointer to one.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", ErrNotStruct
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", ErrNotStruct
	}

	var sb strings.Builder
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> KEY
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		line, err := marshalPair(key, formatValue(v.Field(i)))
		if err != nil {
			return "", fmt.Errorf("env: marshal %s: %w", key, err)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String(), nil
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// marshalPair leaves plain values bare and lets godotenv quote the rest, so
// the output reads back unchanged through godotenv.Load.
func marshalPair(key, value string) (string, error) {
	if !strings.ContainsAny(value, " #\"'`\t\r\n\\$!") {
		return key + "=" + value, nil
	}
	return godotenv.Marshal(map[string]string{key: value})
}
