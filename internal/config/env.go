package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// loadFromEnv overrides configuration with environment variables, walking the
// struct recursively and applying any `env` tags it finds.
func loadFromEnv(config *Config) error {
	return processStructFields(reflect.ValueOf(config).Elem())
}

func processStructFields(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field); err != nil {
				return err
			}
			continue
		}

		tag := t.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		value, ok := os.LookupEnv(tag)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: expected integer, got %q", tag, value)
			}
			field.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: expected boolean, got %q", tag, value)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("%s: unsupported config field kind %s", tag, field.Kind())
		}
	}
	return nil
}
