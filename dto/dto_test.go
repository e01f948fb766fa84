package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitz-php/utilities-sub000/collections"
	"github.com/blitz-php/utilities-sub000/dto"
)

type address struct {
	dto.DataTransferObject

	City string
	Zip  string
}

type user struct {
	dto.DataTransferObject

	Name      string
	Age       int
	Admin     bool
	Score     float64
	Nickname  *string
	Tags      []string
	Friends   *collections.Collection[any] `cast:"string[]"`
	Meta      any
	CreatedAt time.Time
	Address   address
	Secret    string `dto:"-"`
	Login     string `dto:"username"`
}

func (u *user) GetDisplayNameAttribute() any {
	return u.Name + " (" + u.Login + ")"
}

func mustFill(t *testing.T, input map[string]any) *user {
	t.Helper()
	u := &user{}
	require.NoError(t, dto.Fill(u, input))
	return u
}

// ─────────────────────────────────────────────────────────────────────────────
// Hydration
// ─────────────────────────────────────────────────────────────────────────────

func TestFillRejectsInvalidTargets(t *testing.T) {
	assert.ErrorIs(t, dto.Fill(nil, nil), dto.ErrInvalidTarget)
	assert.ErrorIs(t, dto.Fill(user{}, nil), dto.ErrInvalidTarget)
	assert.ErrorIs(t, dto.Fill((*user)(nil), nil), dto.ErrInvalidTarget)

	type plain struct{ Name string }
	assert.ErrorIs(t, dto.Fill(&plain{}, nil), dto.ErrInvalidTarget)
}

func TestFillCastsIntoDeclaredTypes(t *testing.T) {
	u := mustFill(t, map[string]any{
		"name":  "ann",
		"age":   "42",
		"admin": "yes",
		"score": "3.5",
	})
	assert.Equal(t, "ann", u.Name)
	assert.Equal(t, 42, u.Age)
	assert.True(t, u.Admin)
	assert.Equal(t, 3.5, u.Score)
}

func TestFillRoutesUnknownKeysToBag(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "extra": "x"})

	bag := u.Attributes()
	assert.Equal(t, map[string]any{"extra": "x"}, bag)

	v, ok := u.Get("extra")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = u.Get("name")
	require.True(t, ok)
	assert.Equal(t, "ann", v)

	_, ok = u.Get("missing")
	assert.False(t, ok)
}

func TestFillKeepsDefaultsOnEmptyInput(t *testing.T) {
	u := &user{Name: "fallback", Age: 30}
	require.NoError(t, dto.Fill(u, map[string]any{
		"name": "",
		"age":  nil,
	}))
	assert.Equal(t, "fallback", u.Name)
	assert.Equal(t, 30, u.Age)
}

func TestFillOverwritesZeroFieldsWithEmptyInput(t *testing.T) {
	u := mustFill(t, map[string]any{"name": ""})
	assert.Equal(t, "", u.Name)
}

func TestFillHonorsTagRenameAndSkip(t *testing.T) {
	u := mustFill(t, map[string]any{
		"username": "alogin",
		"secret":   "hunter2",
	})
	assert.Equal(t, "alogin", u.Login)
	assert.Empty(t, u.Secret, "dto:\"-\" fields never hydrate")

	bag := u.Attributes()
	assert.Contains(t, bag, "secret")
}

func TestFillPointerField(t *testing.T) {
	u := mustFill(t, map[string]any{"nickname": "zed"})
	require.NotNil(t, u.Nickname)
	assert.Equal(t, "zed", *u.Nickname)
}

func TestFillSliceField(t *testing.T) {
	u := mustFill(t, map[string]any{"tags": []any{"go", 42}})
	assert.Equal(t, []string{"go", "42"}, u.Tags)
}

func TestFillWrapsSingleValueIntoSlice(t *testing.T) {
	u := mustFill(t, map[string]any{"tags": "solo"})
	assert.Equal(t, []string{"solo"}, u.Tags)
}

func TestFillFirstElementWinsOnScalarTarget(t *testing.T) {
	u := mustFill(t, map[string]any{"age": []any{"7", "8"}})
	assert.Equal(t, 7, u.Age)
}

func TestFillCollectionField(t *testing.T) {
	u := mustFill(t, map[string]any{"friends": []any{1, "bob"}})
	require.NotNil(t, u.Friends)
	assert.Equal(t, []any{"1", "bob"}, u.Friends.All(), "cast:\"string[]\" coerces each element")
}

func TestFillMixedField(t *testing.T) {
	payload := map[string]any{"anything": true}
	u := mustFill(t, map[string]any{"meta": payload})
	assert.Equal(t, payload, u.Meta)
}

func TestFillTimeField(t *testing.T) {
	u := mustFill(t, map[string]any{"created_at": "2024-05-01 10:30:00"})
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), u.CreatedAt)

	u = mustFill(t, map[string]any{"created_at": "2024-05-01T10:30:00Z"})
	assert.Equal(t, 2024, u.CreatedAt.Year())
}

func TestFillNestedObject(t *testing.T) {
	u := mustFill(t, map[string]any{
		"address": map[string]any{"city": "Cotonou", "zip": "00229"},
	})
	assert.Equal(t, "Cotonou", u.Address.City)
	assert.Equal(t, "00229", u.Address.Zip)
}

func TestFillIsPermissive(t *testing.T) {
	// an uncastable value leaves the field untouched, not an error
	u := &user{CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, dto.Fill(u, map[string]any{"created_at": "not a date"}))
	assert.Equal(t, 2020, u.CreatedAt.Year())
}

func TestFillRegisteredCasterOnStructField(t *testing.T) {
	t.Cleanup(dto.FlushCasters)

	type badge struct{ Label string }
	type member struct {
		dto.DataTransferObject
		Badge badge `cast:"badge"`
	}

	dto.RegisterCaster("badge", func(v any) any {
		return badge{Label: strings.ToUpper(v.(string))}
	})

	m := &member{}
	require.NoError(t, dto.Fill(m, map[string]any{"badge": "gold"}))
	assert.Equal(t, "GOLD", m.Badge.Label)
}

type shoutingUser struct {
	dto.DataTransferObject
	Name string
}

func (s *shoutingUser) Transform(key string, value any) any {
	if key == "name" {
		return strings.ToUpper(value.(string))
	}
	return value
}

func TestFillTransformerHook(t *testing.T) {
	s := &shoutingUser{}
	require.NoError(t, dto.Fill(s, map[string]any{"name": "ann"}))
	assert.Equal(t, "ANN", s.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Original snapshot
// ─────────────────────────────────────────────────────────────────────────────

func TestOriginalIsWrittenOnceAndCopied(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "age": "42"})

	original := u.Original()
	assert.Equal(t, "42", original["age"], "original holds the raw value, not the cast one")

	original["age"] = "tampered"
	assert.Equal(t, "42", u.Original()["age"])
}

func TestGetOriginalDotNotation(t *testing.T) {
	u := mustFill(t, map[string]any{
		"address": map[string]any{"city": "Cotonou"},
	})
	assert.Equal(t, "Cotonou", u.GetOriginal("address.city"))
	assert.Equal(t, "unknown", u.GetOriginal("address.country", "unknown"))
	assert.Nil(t, u.GetOriginal("nope"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

func TestToArrayExcludesBagKeys(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "age": "42", "extra": "x"})

	out := u.ToArray()
	assert.Equal(t, "ann", out["name"])
	assert.Equal(t, 42, out["age"])
	assert.NotContains(t, out, "extra")
}

func TestToArrayFormatsTimes(t *testing.T) {
	u := mustFill(t, map[string]any{"created_at": "2024-05-01 10:30:00"})
	assert.Equal(t, "2024-05-01 10:30:00", u.ToArray()["created_at"])
}

func TestToArrayRecursesNestedObjects(t *testing.T) {
	u := mustFill(t, map[string]any{
		"address": map[string]any{"city": "Cotonou", "zip": "00229"},
	})
	nested, ok := u.ToArray()["address"].(map[string]any)
	require.True(t, ok, "nested value renders as a map, got %T", u.ToArray()["address"])
	assert.Equal(t, "Cotonou", nested["city"])
}

func TestToArrayFormatsCollections(t *testing.T) {
	u := mustFill(t, map[string]any{"friends": []any{"a", "b"}})
	assert.Equal(t, []any{"a", "b"}, u.ToArray()["friends"])
}

func TestOnlyRestrictsOutput(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "age": "42"})

	out := u.Only("name").ToArray()
	assert.Equal(t, map[string]any{"name": "ann"}, out)

	assert.Contains(t, u.ToArray(), "age", "Only returns a clone; the receiver keeps full visibility")
}

func TestExceptOmitsKeys(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "age": "42"})

	out := u.Except("age").ToArray()
	assert.NotContains(t, out, "age")
	assert.Equal(t, "ann", out["name"])

	assert.Contains(t, u.ToArray(), "age")
}

func TestAppendComputedAttribute(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "username": "alogin"})

	out := u.Append("display_name").ToArray()
	assert.Equal(t, "ann (alogin)", out["display_name"])

	assert.NotContains(t, u.ToArray(), "display_name")
}

func TestAppendUnknownAccessorIsIgnored(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann"})
	assert.NotContains(t, u.Append("no_such_thing").ToArray(), "no_such_thing")
}

func TestToJSON(t *testing.T) {
	u := mustFill(t, map[string]any{"name": "ann", "age": "42"})

	b, err := u.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "ann", decoded["name"])
	assert.Equal(t, 42.0, decoded["age"])
}

func TestToJSONBeforeFill(t *testing.T) {
	u := &user{}
	_, err := u.ToJSON()
	assert.ErrorIs(t, err, dto.ErrNotHydrated)
}

func TestToArrayBeforeFill(t *testing.T) {
	u := &user{}
	assert.Empty(t, u.ToArray())
}
