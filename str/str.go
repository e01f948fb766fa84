package str

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Memoization
//
// Case conversion shows up in hot paths (per-field name mapping during DTO
// hydration, route/key normalisation), always over a small set of distinct
// inputs. Results are cached per (conversion, input) pair. Entries are only
// removed by FlushCache.
// ─────────────────────────────────────────────────────────────────────────────

var caseCache struct {
	mu sync.RWMutex
	m  map[string]string
}

func init() {
	caseCache.m = make(map[string]string)
}

// memoize returns the cached conversion for key, computing and storing it
// via fn on a miss. Safe for concurrent use.
func memoize(kind, input string, fn func(string) string) string {
	key := kind + "\x00" + input
	caseCache.mu.RLock()
	out, ok := caseCache.m[key]
	caseCache.mu.RUnlock()
	if ok {
		return out
	}
	out = fn(input)
	caseCache.mu.Lock()
	caseCache.m[key] = out
	caseCache.mu.Unlock()
	return out
}

// FlushCache empties the case-conversion cache.
// Intended for use in tests and benchmarks.
func FlushCache() {
	caseCache.mu.Lock()
	defer caseCache.mu.Unlock()
	caseCache.m = make(map[string]string)
}

// ─────────────────────────────────────────────────────────────────────────────
// Case conversion
// ─────────────────────────────────────────────────────────────────────────────

// words splits s into lowercase word segments on non-alphanumeric runs and
// lower→upper case transitions: "userID_v2" → ["user", "id", "v2"].
func words(s string) []string {
	out := make([]string, 0, 4)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}
	flush()
	return out
}

// Studly converts s to StudlyCaps (a.k.a. PascalCase).
func Studly(s string) string {
	return memoize("studly", s, func(s string) string {
		var b strings.Builder
		for _, w := range words(s) {
			b.WriteString(strings.ToUpper(w[:1]))
			b.WriteString(w[1:])
		}
		return b.String()
	})
}

// Camel converts s to camelCase.
func Camel(s string) string {
	return memoize("camel", s, func(s string) string {
		studly := Studly(s)
		if studly == "" {
			return ""
		}
		return strings.ToLower(studly[:1]) + studly[1:]
	})
}

// Snake converts s to snake_case.
func Snake(s string) string {
	return memoize("snake", s, func(s string) string {
		return strings.Join(words(s), "_")
	})
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return memoize("kebab", s, func(s string) string {
		return strings.Join(words(s), "-")
	})
}

// Title converts s to language-aware title case ("hello world" → "Hello World").
func Title(s string) string {
	return memoize("title", s, cases.Title(language.Und).String)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slugs, identifiers & randomness
// ─────────────────────────────────────────────────────────────────────────────

// Slug converts s to a URL-safe slug: letters and digits are lowercased,
// whitespace runs collapse to a single sep, everything else is dropped.
//
//	str.Slug("My App 2.0!", "-") // → "my-app-20"
func Slug(s, sep string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteString(sep)
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// UUID returns a random RFC 4122 version 4 UUID string.
func UUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a valid UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

const randomAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Random returns n cryptographically random alphanumeric characters.
// It panics only if the platform's secure random source is unavailable.
func Random(n int) string {
	if n <= 0 {
		return ""
	}
	max := big.NewInt(int64(len(randomAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("str: secure random source unavailable: " + err.Error())
		}
		b[i] = randomAlphabet[idx.Int64()]
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & truncation
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether s contains any of the given needles.
// An empty needle list returns false.
func Contains(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// StartsWith reports whether s starts with any of the given prefixes.
func StartsWith(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with any of the given suffixes.
func EndsWith(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if suf != "" && strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// Limit truncates s to at most n runes, appending end when truncation
// happened.
//
//	str.Limit("The quick brown fox", 9, "…") // → "The quick…"
func Limit(s string, n int, end string) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + end
}
