package dto

import "errors"

// Arrayable is the map-conversion capability. It is checked first when a
// value is formatted for serialization; DataTransferObject itself implements
// it, so nested DTOs serialize recursively for free.
type Arrayable interface {
	ToArray() map[string]any
}

// Jsonable is the JSON-conversion capability, checked after [Arrayable].
// The returned bytes are embedded verbatim into the parent document.
type Jsonable interface {
	ToJSON() ([]byte, error)
}

// Transformer is an optional hook on the embedding struct, invoked for each
// matched key before casting. Use it to normalize raw values (trim strings,
// translate legacy enum names, …). Returning the value unchanged is the
// identity behavior [Fill] assumes when the hook is absent.
type Transformer interface {
	Transform(key string, value any) any
}

// Sentinel errors returned by Fill and the serialization helpers.
var (
	// ErrInvalidTarget is returned by Fill when dst is not a non-nil
	// pointer to a struct embedding DataTransferObject.
	ErrInvalidTarget = errors.New("dto: target must be a non-nil pointer to a struct embedding dto.DataTransferObject")

	// ErrNotHydrated is returned when serialization is attempted on a
	// DataTransferObject that was never passed through Fill.
	ErrNotHydrated = errors.New("dto: object has not been hydrated with dto.Fill")
)
