package mutate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// setPath assigns value to the property named by a dotted path on target,
// resolving each segment against the struct's JSON tag names. Nil pointers
// and nil maps along the way are allocated, numeric segments index into
// slices, and assignments tolerate the loose typing of decoded JSON
// (float64 into int fields, bool into *bool fields, strings into named
// string types).
func setPath(target any, path string, value any) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("mutate: empty property path")
	}
	root := reflect.ValueOf(target)
	if root.Kind() != reflect.Pointer || root.IsNil() {
		return fmt.Errorf("mutate: update target must be a non-nil pointer")
	}
	return setSegments(root.Elem(), segments, path, value)
}

func splitPath(path string) []string {
	raw := strings.Split(path, ".")
	out := raw[:0]
	for _, segment := range raw {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func setSegments(current reflect.Value, segments []string, fullPath string, value any) error {
	segment := segments[0]
	last := len(segments) == 1

	for current.Kind() == reflect.Pointer {
		if current.IsNil() {
			if !current.CanSet() {
				return fmt.Errorf("mutate: cannot allocate %q in path %q", segment, fullPath)
			}
			current.Set(reflect.New(current.Type().Elem()))
		}
		current = current.Elem()
	}

	switch current.Kind() {
	case reflect.Struct:
		field := fieldByJSONName(current, segment)
		if !field.IsValid() {
			return fmt.Errorf("mutate: unknown property %q in path %q", segment, fullPath)
		}
		if last {
			return assign(field, value, fullPath)
		}
		return setSegments(field, segments[1:], fullPath, value)

	case reflect.Map:
		if current.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("mutate: unsupported map key type in path %q", fullPath)
		}
		if current.IsNil() {
			if !current.CanSet() {
				return fmt.Errorf("mutate: cannot allocate map in path %q", fullPath)
			}
			current.Set(reflect.MakeMap(current.Type()))
		}
		key := reflect.ValueOf(segment)
		if last {
			current.SetMapIndex(key, reflect.ValueOf(value))
			return nil
		}
		nested := current.MapIndex(key)
		if !nested.IsValid() || nested.IsNil() {
			return fmt.Errorf("mutate: missing nested value %q in path %q", segment, fullPath)
		}
		inner, ok := nested.Interface().(map[string]any)
		if !ok {
			return fmt.Errorf("mutate: %q is not a nested object in path %q", segment, fullPath)
		}
		return setSegments(reflect.ValueOf(inner), segments[1:], fullPath, value)

	case reflect.Slice:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= current.Len() {
			return fmt.Errorf("mutate: bad index %q in path %q", segment, fullPath)
		}
		element := current.Index(index)
		if last {
			return assign(element, value, fullPath)
		}
		return setSegments(element, segments[1:], fullPath, value)

	default:
		return fmt.Errorf("mutate: cannot descend into %s at %q in path %q", current.Kind(), segment, fullPath)
	}
}

func fieldByJSONName(structValue reflect.Value, name string) reflect.Value {
	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == name {
			return structValue.Field(i)
		}
		if tagName == "" && strings.EqualFold(field.Name, name) {
			return structValue.Field(i)
		}
	}
	return reflect.Value{}
}

func assign(target reflect.Value, value any, fullPath string) error {
	if !target.CanSet() {
		return fmt.Errorf("mutate: property at %q is not settable", fullPath)
	}

	if value == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	incoming := reflect.ValueOf(value)

	// Optional booleans and other pointer targets accept the bare value.
	if target.Kind() == reflect.Pointer {
		elemType := target.Type().Elem()
		converted, err := convert(incoming, elemType, fullPath)
		if err != nil {
			return err
		}
		boxed := reflect.New(elemType)
		boxed.Elem().Set(converted)
		target.Set(boxed)
		return nil
	}

	converted, err := convert(incoming, target.Type(), fullPath)
	if err != nil {
		return err
	}
	target.Set(converted)
	return nil
}

func convert(incoming reflect.Value, want reflect.Type, fullPath string) (reflect.Value, error) {
	if incoming.Type().AssignableTo(want) {
		return incoming, nil
	}
	if incoming.Type().ConvertibleTo(want) {
		// Numeric and named-string conversions are routine for decoded JSON;
		// anything stringifying a number is not what the caller meant.
		if want.Kind() == reflect.String && incoming.Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("mutate: cannot assign %s to %s at %q", incoming.Type(), want, fullPath)
		}
		return incoming.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("mutate: cannot assign %s to %s at %q", incoming.Type(), want, fullPath)
}
