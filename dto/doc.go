// Package dto provides an embeddable DataTransferObject base with a
// reflection-driven property-casting engine.
//
// # Overview
//
// Embed [DataTransferObject] in a plain struct and hydrate it from an
// untyped map with [Fill]. Each input key is matched against the struct's
// exported fields (snake_case of the field name, overridable with a
// `dto:"name"` tag) and coerced into the declared field type. Keys without
// a matching field land in a dynamic attributes bag; the raw input is kept
// as an immutable "original" snapshot.
//
//	type User struct {
//	    dto.DataTransferObject
//
//	    Name      string     `dto:"name"`
//	    Age       int        `dto:"age"`
//	    Roles     []string   `dto:"roles"`
//	    CreatedAt time.Time  `dto:"created_at"`
//	}
//
//	u := &User{}
//	err := dto.Fill(u, map[string]any{
//	    "name": "Alice", "age": "42", "roles": "admin", "shoe_size": 38,
//	})
//	// u.Age == 42 (cast from "42"), u.Roles == []string{"admin"},
//	// "shoe_size" lives in the attributes bag.
//
// # Casting
//
// The declared field type drives coercion: numeric strings become ints and
// floats, scalars become strings, slices wrap single values, and so on. The
// `cast:"..."` tag refines the target for `any` fields and names custom
// casters registered with [RegisterCaster] — the static-typing analog of a
// @var docblock. Unknown cast names are a deliberate no-op: the value
// passes through unchanged rather than failing hydration.
//
// # Serialization
//
//	u.ToArray() // map[string]any of the declared fields, formatted
//	u.ToJSON()  // JSON encoding of ToArray()
//
// Visibility is controlled with [DataTransferObject.Only] and
// [DataTransferObject.Except] (both return clones), and computed attributes
// are added with [DataTransferObject.Append], which resolves a
// Get<Studly>Attribute method on the embedding struct. Values are formatted
// recursively: [Arrayable] first, then [Jsonable], then [fmt.Stringer],
// then [json.Marshaler]; times render as "2006-01-02 15:04:05".
package dto
