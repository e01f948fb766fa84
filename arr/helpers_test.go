package arr_test

import (
	"testing"

	"github.com/blitz-php/utilities-sub000/arr"
)

func TestAdd(t *testing.T) {
	m := map[string]any{"user": map[string]any{"name": "ann"}}

	arr.Add(m, "user.age", 30)
	if got := arr.Get(m, "user.age"); got != 30 {
		t.Fatalf("Add on missing path: got %v", got)
	}

	arr.Add(m, "user.name", "bob")
	if got := arr.Get(m, "user.name"); got != "ann" {
		t.Fatalf("Add must not overwrite: got %v", got)
	}
}

func TestDivide(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	keys, values := arr.Divide(m)
	if len(keys) != 2 || len(values) != 2 {
		t.Fatalf("Divide: got %d keys, %d values", len(keys), len(values))
	}
	for i, k := range keys {
		if m[k] != values[i] {
			t.Fatalf("keys and values out of alignment at %d: %q → %v", i, k, values[i])
		}
	}
}

func TestSortBy(t *testing.T) {
	items := []string{"ccc", "a", "bb"}

	byLen := arr.SortBy(items, func(s string) float64 { return float64(len(s)) })
	if byLen[0] != "a" || byLen[2] != "ccc" {
		t.Fatalf("SortBy: got %v", byLen)
	}

	desc := arr.SortByDesc(items, func(s string) float64 { return float64(len(s)) })
	if desc[0] != "ccc" || desc[2] != "a" {
		t.Fatalf("SortByDesc: got %v", desc)
	}

	if items[0] != "ccc" {
		t.Fatalf("input slice must stay untouched: %v", items)
	}
}
