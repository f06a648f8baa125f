package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment walks the config tree and assigns every field that
// carries an env tag. An unset variable falls back to the default tag; a
// field with neither keeps its zero value.
func loadFromEnvironment(config *Config) error {
	return walkFields(reflect.ValueOf(config).Elem(), func(field reflect.Value, tag reflect.StructTag) error {
		name := tag.Get("env")
		raw, ok := os.LookupEnv(name)
		if !ok || raw == "" {
			raw = tag.Get("default")
		}
		if raw == "" {
			return nil
		}
		if err := assign(field, raw); err != nil {
			return fmt.Errorf("%s=%q: %w", name, raw, err)
		}
		return nil
	})
}

func walkFields(v reflect.Value, visit func(reflect.Value, reflect.StructTag) error) error {
	for i := range v.NumField() {
		field, meta := v.Field(i), v.Type().Field(i)
		switch {
		case !field.CanSet():
		case field.Kind() == reflect.Struct:
			if err := walkFields(field, visit); err != nil {
				return err
			}
		case meta.Tag.Get("env") != "":
			if err := visit(field, meta.Tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.New("not a duration")
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("not a boolean")
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.New("not an integer")
		}
		field.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.New("not a number")
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
