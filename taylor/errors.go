package taylor

import "errors"

var (
	// ErrUnsupportedSource is returned by Extract for a source type it cannot expand.
	ErrUnsupportedSource = errors.New("taylor: unsupported coefficient source")

	// ErrInvalidOrder is returned for a negative truncation order.
	ErrInvalidOrder = errors.New("taylor: invalid order")

	// ErrDomain is returned when an expansion leaves the domain of a function,
	// e.g. the logarithm of a series with a zero constant term.
	ErrDomain = errors.New("taylor: expansion outside of the function domain")

	// ErrUnknownFunction is returned by Lookup for a name missing from the catalog.
	ErrUnknownFunction = errors.New("taylor: unknown function")
)
