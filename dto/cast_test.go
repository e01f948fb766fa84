package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blitz-php/utilities-sub000/dto"
)

func TestCastScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		typeName string
		want     any
	}{
		{"int from string", "42", "int", 42},
		{"integer alias", "42", "integer", 42},
		{"int from float", 3.9, "int", 3},
		{"int from bool", true, "int", 1},
		{"int from garbage", "not a number", "int", 0},
		{"float from string", "3.5", "float", 3.5},
		{"double alias", "3.5", "double", 3.5},
		{"number alias", 7, "number", 7.0},
		{"string from int", 42, "string", "42"},
		{"string from float", 1.5, "string", "1.5"},
		{"bool from yes", "yes", "bool", true},
		{"bool from on", "on", "boolean", true},
		{"bool from true", "true", "bool", true},
		{"bool from zero", 0, "bool", false},
		{"bool from nonzero", 2, "bool", true},
		{"mixed passthrough", "anything", "mixed", "anything"},
		{"empty name passthrough", 42, "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Cast(tt.value, tt.typeName))
		})
	}
}

func TestCastNilPassesThrough(t *testing.T) {
	assert.Nil(t, dto.Cast(nil, "int"))
	assert.Nil(t, dto.Cast(nil, "whatever"))
}

func TestCastObject(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	got := dto.Cast(point{X: 1, Y: 2}, "object")
	assert.Equal(t, map[string]any{"x": 1.0, "y": 2.0}, got)

	m := map[string]any{"a": 1}
	assert.Equal(t, m, dto.Cast(m, "object"))
}

func TestCastUnknownTypeName(t *testing.T) {
	// unrecognized names leave the value untouched instead of failing
	assert.Equal(t, "raw", dto.Cast("raw", "App\\Entities\\User"))
	assert.Equal(t, 42, dto.Cast(42, "no-such-type"))
}

func TestCasterRegistry(t *testing.T) {
	t.Cleanup(dto.FlushCasters)

	type upper string
	dto.RegisterCaster("upper", func(v any) any {
		s, _ := v.(string)
		out := make([]rune, 0, len(s))
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
		}
		return upper(out)
	})

	assert.True(t, dto.HasCaster("upper"))
	assert.Equal(t, upper("HI"), dto.Cast("hi", "upper"))

	dto.FlushCasters()
	assert.False(t, dto.HasCaster("upper"))
	assert.Equal(t, "hi", dto.Cast("hi", "upper"), "flushed caster falls back to passthrough")
}
