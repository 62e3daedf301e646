package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/numwidget/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides replaces the keys of key.Binding fields in km, matching
// config names in snake_case to field names (focus_next -> FocusNext).
// Embedded structs are searched as well. The help description of each binding
// is kept. It returns the sorted override names that matched no field.
//
// Example:
//
//	km := keymap.NewBase()
//	unknown := keymap.ApplyOverrides(&km, cfg.TUI.Keybindings)
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) []string {
	if len(overrides) == 0 {
		return nil
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil
	}

	used := make(map[string]bool)
	applyOverridesRecursive(v.Elem(), overrides, used)

	var unknown []string
	for name := range overrides {
		if !used[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func applyOverridesRecursive(v reflect.Value, overrides config.KeybindingSectionConfig, used map[string]bool) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides, used)
			continue
		}
		if fieldType.Type != bindingType {
			continue
		}

		name := camelToSnake(fieldType.Name)
		keys, ok := overrides[name]
		if !ok || len(keys) == 0 {
			continue
		}
		used[name] = true

		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: FocusNext -> focus_next, Quit -> quit
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
