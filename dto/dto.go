package dto

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/blitz-php/utilities-sub000/arr"
	"github.com/blitz-php/utilities-sub000/collections"
	"github.com/blitz-php/utilities-sub000/str"
)

// DateFormat is the layout used when serializing time values in ToArray.
const DateFormat = "2006-01-02 15:04:05"

var (
	baseType       = reflect.TypeOf(DataTransferObject{})
	timeType       = reflect.TypeOf(time.Time{})
	collectionType = reflect.TypeOf((*collections.Collection[any])(nil))
)

// DataTransferObject is the embeddable DTO base.
//
// It carries the dynamic attributes bag (input keys with no matching
// declared field), the immutable original input snapshot, and the
// serialization visibility lists. The zero value is inert; [Fill] wires it
// to the embedding struct.
type DataTransferObject struct {
	attributes map[string]any
	original   map[string]any

	only    []string
	except  []string
	appends []string

	// outer is the pointer to the embedding struct, set once by Fill.
	outer reflect.Value
}

// ─────────────────────────────────────────────────────────────────────────────
// Hydration
// ─────────────────────────────────────────────────────────────────────────────

// Fill hydrates dst from an untyped attribute map.
//
// dst must be a non-nil pointer to a struct embedding DataTransferObject.
// For each input key, in order of processing per key:
//
//  1. the raw value is recorded in the original snapshot, unconditionally;
//  2. keys without a matching declared field land in the attributes bag;
//  3. an empty value (nil or "") keeps a pre-set non-zero field value, so
//     defaults assigned before Fill survive;
//  4. the [Transformer] hook runs, when implemented by dst;
//  5. the value is cast into the field's declared type, refined by the
//     field's `cast:"..."` tag.
//
// Casting is permissive: a value that cannot be coerced leaves the field
// untouched rather than failing the whole hydration.
func Fill(dst any, input map[string]any) error {
	rv := reflect.ValueOf(dst)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	elem := rv.Elem()
	base := findBase(elem)
	if base == nil {
		return ErrInvalidTarget
	}

	base.attributes = make(map[string]any)
	base.original = make(map[string]any, len(input))
	base.outer = rv

	index := fieldIndex(elem.Type())
	transformer, _ := dst.(Transformer)

	for key, value := range input {
		base.original[key] = value

		i, declared := index[key]
		if !declared {
			base.attributes[key] = value
			continue
		}
		fv := elem.Field(i)
		if isEmptyValue(value) && !fv.IsZero() {
			continue
		}
		if transformer != nil {
			value = transformer.Transform(key, value)
		}
		assignField(fv, elem.Type().Field(i), value)
	}
	return nil
}

// isDTOType reports whether t is a struct embedding DataTransferObject.
func isDTOType(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if sf := t.Field(i); sf.Anonymous && sf.Type == baseType {
			return true
		}
	}
	return false
}

// findBase returns the embedded DataTransferObject of v, or nil.
func findBase(v reflect.Value) *DataTransferObject {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type == baseType {
			return v.Field(i).Addr().Interface().(*DataTransferObject)
		}
	}
	return nil
}

// fieldKey resolves the attribute-map key for a struct field. The second
// return is false for fields that do not participate in hydration or
// serialization: the embedded base, unexported fields, and `dto:"-"`.
func fieldKey(sf reflect.StructField) (string, bool) {
	if sf.Anonymous && sf.Type == baseType {
		return "", false
	}
	if sf.PkgPath != "" {
		return "", false
	}
	tag := sf.Tag.Get("dto")
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		return tag, true
	}
	return str.Snake(sf.Name), true
}

func fieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key, ok := fieldKey(t.Field(i)); ok {
			index[key] = i
		}
	}
	return index
}

func isEmptyValue(value any) bool {
	return value == nil || value == ""
}

// assignField casts value into the declared field type.
//
// The dispatch mirrors the subtype resolution described on the package doc:
// Collection-typed fields and `cast:"T[]"`-annotated mixed fields wrap the
// value element-wise; slice fields coerce element-wise into the element
// type; mixed fields without a tag take the value as-is; scalar fields
// receiving a list take its first element.
func assignField(fv reflect.Value, sf reflect.StructField, value any) {
	tag := sf.Tag.Get("cast")
	t := fv.Type()

	if value == nil {
		fv.Set(reflect.Zero(t))
		return
	}

	switch {
	case t == collectionType:
		fv.Set(reflect.ValueOf(castList(value, strings.TrimSuffix(tag, "[]"))))

	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		items := wrapList(value)
		out := reflect.MakeSlice(t, 0, len(items))
		for _, e := range items {
			if cv, ok := coerce(e, t.Elem(), strings.TrimSuffix(tag, "[]")); ok {
				out = reflect.Append(out, cv)
			}
		}
		fv.Set(out)

	case t.Kind() == reflect.Interface:
		switch {
		case tag == "" || tag == "mixed":
			fv.Set(reflect.ValueOf(value))
		case strings.HasSuffix(tag, "[]"):
			// list annotation on a mixed field wraps into a Collection
			fv.Set(reflect.ValueOf(castList(value, strings.TrimSuffix(tag, "[]"))))
		default:
			fv.Set(reflect.ValueOf(Cast(value, tag)))
		}

	default:
		v := value
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if _, isBytes := value.([]byte); !isBytes {
				// collection-shaped input on a single-value target:
				// the first element wins
				items := wrapList(value)
				if len(items) == 0 {
					return
				}
				v = items[0]
			}
		}
		if cv, ok := coerce(v, t, tag); ok {
			fv.Set(cv)
		}
	}
}

// castList wraps value into a Collection, mapping every element through
// [Cast] with the given element type name.
func castList(value any, elemName string) *collections.Collection[any] {
	items := wrapList(value)
	mapped := make([]any, len(items))
	for i, e := range items {
		mapped[i] = Cast(e, elemName)
	}
	return collections.From(mapped)
}

// coerce converts value into the concrete reflect type t. tag carries the
// field's cast annotation for registry lookups. Reports false when no
// conversion applies; the caller leaves the field untouched in that case.
func coerce(value any, t reflect.Type, tag string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(toInt(value)).Convert(t), true
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(toFloat(value)).Convert(t), true
	case reflect.Bool:
		return reflect.ValueOf(toBool(value)), true
	case reflect.String:
		return reflect.ValueOf(toString(value)).Convert(t), true
	case reflect.Pointer:
		cv, ok := coerce(value, t.Elem(), tag)
		if !ok {
			return reflect.Value{}, false
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(cv)
		return ptr, true
	case reflect.Interface:
		cv := reflect.ValueOf(Cast(value, tag))
		if cv.IsValid() && cv.Type().AssignableTo(t) {
			return cv, true
		}
		return reflect.Value{}, false
	default:
		if t == timeType {
			if tm, ok := toTime(value); ok {
				return reflect.ValueOf(tm), true
			}
			return reflect.Value{}, false
		}
		// nested DTO: a map hydrates a fresh instance of the field type
		if m, ok := value.(map[string]any); ok && isDTOType(t) {
			np := reflect.New(t)
			if err := Fill(np.Interface(), m); err == nil {
				return np.Elem(), true
			}
		}
		name := tag
		if name == "" {
			name = t.String()
		}
		cv := reflect.ValueOf(Cast(value, name))
		if !cv.IsValid() {
			return reflect.Value{}, false
		}
		if cv.Type().AssignableTo(t) {
			return cv, true
		}
		if cv.Type().ConvertibleTo(t) {
			return cv.Convert(t), true
		}
		return reflect.Value{}, false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key: a declared field when one
// matches, otherwise the attributes bag. The boolean reports presence.
func (d *DataTransferObject) Get(key string) (any, bool) {
	if d.outer.IsValid() {
		elem := d.outer.Elem()
		t := elem.Type()
		for i := 0; i < t.NumField(); i++ {
			if k, ok := fieldKey(t.Field(i)); ok && k == key {
				return elem.Field(i).Interface(), true
			}
		}
	}
	v, ok := d.attributes[key]
	return v, ok
}

// Attributes returns a copy of the dynamic attributes bag — the input keys
// that matched no declared field.
func (d *DataTransferObject) Attributes() map[string]any {
	return maps.Clone(d.attributes)
}

// Original returns a copy of the raw constructor input. The snapshot is
// written once by [Fill] and never mutated afterwards.
func (d *DataTransferObject) Original() map[string]any {
	return maps.Clone(d.original)
}

// GetOriginal reads the raw input snapshot using a dot-notation key path,
// returning def[0] (or nil) when the path does not resolve.
//
//	d.GetOriginal("address.city", "unknown")
func (d *DataTransferObject) GetOriginal(key string, def ...any) any {
	return arr.Get(d.original, key, def...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

// clone copies the base together with a snapshot of the embedding struct,
// so visibility changes never leak back into the receiver.
func (d *DataTransferObject) clone() *DataTransferObject {
	c := &DataTransferObject{
		attributes: maps.Clone(d.attributes),
		original:   maps.Clone(d.original),
		only:       slices.Clone(d.only),
		except:     slices.Clone(d.except),
		appends:    slices.Clone(d.appends),
	}
	if d.outer.IsValid() {
		np := reflect.New(d.outer.Type().Elem())
		np.Elem().Set(d.outer.Elem())
		c.outer = np
	}
	return c
}

// Only returns a clone restricted to the given keys in ToArray output.
func (d *DataTransferObject) Only(keys ...string) *DataTransferObject {
	c := d.clone()
	c.only = append(c.only, keys...)
	return c
}

// Except returns a clone whose ToArray output omits the given keys.
func (d *DataTransferObject) Except(keys ...string) *DataTransferObject {
	c := d.clone()
	c.except = append(c.except, keys...)
	return c
}

// Append returns a clone whose ToArray output additionally contains the
// named computed attributes. Each name resolves to a
// Get<StudlyName>Attribute method on the embedding struct:
//
//	func (u *User) GetFullNameAttribute() any { return u.First + " " + u.Last }
//	u.Append("full_name").ToArray() // contains "full_name"
func (d *DataTransferObject) Append(names ...string) *DataTransferObject {
	c := d.clone()
	c.appends = append(c.appends, names...)
	return c
}

// ToArray renders the declared fields as a map.
//
// The visible key set is the only-list intersection when an only-list is
// present, otherwise all keys minus the except-list. Keys living in the
// attributes bag are always excluded. Appended computed attributes are
// resolved last. Every value is formatted recursively (see package doc for
// the capability priority order). Returns an empty map before hydration.
func (d *DataTransferObject) ToArray() map[string]any {
	out := make(map[string]any)
	if !d.outer.IsValid() {
		return out
	}
	elem := d.outer.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		key, ok := fieldKey(t.Field(i))
		if !ok {
			continue
		}
		if len(d.only) > 0 && !slices.Contains(d.only, key) {
			continue
		}
		if slices.Contains(d.except, key) {
			continue
		}
		if _, inBag := d.attributes[key]; inBag {
			continue
		}
		out[key] = formatValue(elem.Field(i).Interface())
	}
	for _, name := range d.appends {
		if v, ok := d.callAccessor(name); ok {
			out[name] = formatValue(v)
		}
	}
	return out
}

// ToJSON marshals ToArray. Returns [ErrNotHydrated] before Fill has run.
func (d *DataTransferObject) ToJSON() ([]byte, error) {
	if !d.outer.IsValid() {
		return nil, ErrNotHydrated
	}
	return json.Marshal(d.ToArray())
}

// callAccessor invokes the computed-attribute accessor for name.
func (d *DataTransferObject) callAccessor(name string) (any, bool) {
	m := d.outer.MethodByName("Get" + str.Studly(name) + "Attribute")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() < 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// formatValue renders a single value for serialization.
//
// Times render with [DateFormat]. Conversion capabilities are consulted in
// fixed priority order: [Arrayable], then [Jsonable], then [fmt.Stringer],
// then [json.Marshaler]. Collections, maps and slices recurse element-wise.
func formatValue(v any) any {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.Format(DateFormat)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.Format(DateFormat)
	case *collections.Collection[any]:
		if val == nil {
			return nil
		}
		return collections.Map(val, func(e any, _ int) any { return formatValue(e) }).All()
	case *collections.LazyCollection[any]:
		if val == nil {
			return nil
		}
		return collections.LazyMap(val, func(e any, _ int) any { return formatValue(e) }).All()
	case Arrayable:
		out := make(map[string]any)
		for k, e := range val.ToArray() {
			out[k] = formatValue(e)
		}
		return out
	case Jsonable:
		if b, err := val.ToJSON(); err == nil {
			return json.RawMessage(b)
		}
		return nil
	case fmt.Stringer:
		return val.String()
	case json.Marshaler:
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = formatValue(e)
		}
		return out
	case string, []byte:
		return val
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return collections.Map(
				collections.From(wrapList(v)),
				func(e any, _ int) any { return formatValue(e) },
			).All()
		}
		// DTO structs held by value: promote to a pointer so the
		// Arrayable capability (pointer receiver) applies
		if rv.Kind() == reflect.Struct && isDTOType(rv.Type()) {
			np := reflect.New(rv.Type())
			np.Elem().Set(rv)
			if a, ok := np.Interface().(Arrayable); ok {
				return formatValue(a)
			}
		}
		return v
	}
}
