package variant

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/grailbio/base/errors"
)

// ClearAttributes drops every attribute, leaving the record on a fresh
// private map (not the shared empty one).
func (a *Annotation) ClearAttributes() {
	a.attrs = map[string]interface{}{}
	a.ownsAttrs = true
}

// SetAttributes replaces all attributes with the contents of m.
func (a *Annotation) SetAttributes(m map[string]interface{}) error {
	a.ClearAttributes()
	return a.PutAttributes(m)
}

// PutAttribute binds key to value, failing on an existing binding.
func (a *Annotation) PutAttribute(key string, value interface{}) error {
	return a.PutAttributeOverwrite(key, value, false)
}

// PutAttributeOverwrite binds key to value.  Unless allowOverwrite is set,
// rebinding an existing key is an error.
func (a *Annotation) PutAttributeOverwrite(key string, value interface{}, allowOverwrite bool) error {
	if !allowOverwrite && a.HasAttribute(key) {
		return errors.E(errors.Precondition, fmt.Sprintf("attempting to overwrite key %q: %v", key, a))
	}
	if !a.ownsAttrs { // shared -> private
		a.attrs = map[string]interface{}{}
		a.ownsAttrs = true
	}
	a.attrs[key] = value
	return nil
}

// RemoveAttribute unbinds key if present.  Absent keys are not an error, but
// the record still moves off the shared empty storage.
func (a *Annotation) RemoveAttribute(key string) {
	if !a.ownsAttrs { // shared -> private
		a.attrs = map[string]interface{}{}
		a.ownsAttrs = true
	}
	delete(a.attrs, key)
}

// PutAttributes adds every binding in m.  A nil map is a no-op.  When the
// record currently has no attributes the whole map is adopted without
// per-key duplicate checks; otherwise each binding goes through the strict
// PutAttribute path, and the first duplicate aborts the batch with earlier
// bindings already applied.
func (a *Annotation) PutAttributes(m map[string]interface{}) error {
	if m == nil {
		return nil
	}
	if len(a.attrs) == 0 {
		if !a.ownsAttrs { // shared -> private
			a.attrs = map[string]interface{}{}
			a.ownsAttrs = true
		}
		for k, v := range m {
			a.attrs[k] = v
		}
		return nil
	}
	for k, v := range m {
		if err := a.PutAttributeOverwrite(k, v, false); err != nil {
			return err
		}
	}
	return nil
}

// HasAttribute returns true iff key is bound.
func (a *Annotation) HasAttribute(key string) bool {
	_, ok := a.attrs[key]
	return ok
}

// NumAttributes returns the number of bound keys.
func (a *Annotation) NumAttributes() int {
	return len(a.attrs)
}

// Attributes returns a copy of the attribute map.
func (a *Annotation) Attributes() map[string]interface{} {
	out := make(map[string]interface{}, len(a.attrs))
	for k, v := range a.attrs {
		out[k] = v
	}
	return out
}

// Attribute returns the value bound to key, nil if unbound.
func (a *Annotation) Attribute(key string) interface{} {
	return a.attrs[key]
}

// AttributeOrDefault returns the value bound to key, defaultValue if
// unbound.  A key explicitly bound to nil is still "bound".
func (a *Annotation) AttributeOrDefault(key string, defaultValue interface{}) interface{} {
	if v, ok := a.attrs[key]; ok {
		return v
	}
	return defaultValue
}

// AttributeAsList returns the value bound to key as a sequence: nil when
// unbound, the value itself when already []interface{}, a converted view for
// any other slice or array, and a single-element sequence for a scalar.
func (a *Annotation) AttributeAsList(key string) []interface{} {
	v, ok := a.attrs[key]
	if !ok || v == nil {
		return nil
	}
	if l, ok := v.([]interface{}); ok {
		return l
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]interface{}, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []interface{}{v}
}

// AttributeAsString returns the value bound to key, rendered as text, or
// defaultValue when unbound.  Non-string values use their canonical fmt
// rendering; this conversion cannot fail.
func (a *Annotation) AttributeAsString(key string, defaultValue string) string {
	v, ok := a.attrs[key]
	if !ok || v == nil {
		return defaultValue
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// AttributeAsInt returns the value bound to key as an int.  An unbound key,
// or one bound to the MissingValue token, yields defaultValue.  A bound
// string is parsed; a parse failure, or a value of any other type, is an
// error rather than the default.
func (a *Annotation) AttributeAsInt(key string, defaultValue int) (int, error) {
	v, ok := a.attrs[key]
	if !ok || v == nil || v == MissingValue {
		return defaultValue, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case string:
		n, err := strconv.Atoi(x)
		if err != nil {
			return 0, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: parsing %q as int: %v", key, x, err))
		}
		return n, nil
	default:
		return 0, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: cannot read %T as int", key, v))
	}
}

// AttributeAsFloat64 returns the value bound to key as a float64,
// defaultValue when unbound.  Ints widen; bound strings are parsed; parse
// failures and other types are errors.
func (a *Annotation) AttributeAsFloat64(key string, defaultValue float64) (float64, error) {
	v, ok := a.attrs[key]
	if !ok || v == nil {
		return defaultValue, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: parsing %q as float: %v", key, x, err))
		}
		return f, nil
	default:
		return 0, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: cannot read %T as float", key, v))
	}
}

// AttributeAsBool returns the value bound to key as a bool, defaultValue
// when unbound.  Bound strings are parsed; parse failures and other types
// are errors.
func (a *Annotation) AttributeAsBool(key string, defaultValue bool) (bool, error) {
	v, ok := a.attrs[key]
	if !ok || v == nil {
		return defaultValue, nil
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: parsing %q as bool: %v", key, x, err))
		}
		return b, nil
	default:
		return false, errors.E(errors.Invalid, fmt.Sprintf("attribute %q: cannot read %T as bool", key, v))
	}
}
