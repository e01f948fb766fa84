// Package str provides fluent string helpers inspired by Laravel's Str
// facade: case conversion, slugs, UUIDs, and random strings.
//
// # Case conversion
//
//	str.Camel("hello_world")   // → "helloWorld"
//	str.Studly("hello_world")  // → "HelloWorld"
//	str.Snake("helloWorld")    // → "hello_world"
//	str.Kebab("helloWorld")    // → "hello-world"
//
// Case conversions are memoized in a process-wide cache: converting the same
// input twice performs the work once. The cache is idempotent and is never
// invalidated except by an explicit [FlushCache] — primarily useful in
// benchmarks and long-running fuzzing sessions.
//
// # Identifiers
//
//	str.UUID()       // → "7b8e1fd0-…" (RFC 4122 v4)
//	str.Random(16)   // → 16 crypto-random alphanumeric characters
//	str.Slug("My App 2.0!", "-") // → "my-app-20"
package str
