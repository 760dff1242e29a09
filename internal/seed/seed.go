// Package seed holds the mock data the app starts from. Nothing here is
// persisted: every view builds its state from a freshly loaded Catalog.
package seed

import (
	_ "embed"
	"time"
)

//go:embed seed.yaml
var defaultSeed []byte

// Source produces a Catalog for the given instant. Views call it on mount.
type Source func(now time.Time) (*Catalog, error)

// Default loads the catalog compiled into the binary.
func Default(now time.Time) (*Catalog, error) {
	s, err := ParseSchema(defaultSeed)
	if err != nil {
		return nil, err
	}
	return Convert(s, now)
}

// FromFile returns a Source that reads a replacement seed file on every call.
func FromFile(path string) Source {
	return func(now time.Time) (*Catalog, error) {
		s, err := LoadSchemaFile(path)
		if err != nil {
			return nil, err
		}
		return Convert(s, now)
	}
}

// MustDefault is like Default but panics if the embedded seed is invalid.
func MustDefault(now time.Time) *Catalog {
	c, err := Default(now)
	if err != nil {
		panic(err)
	}
	return c
}
