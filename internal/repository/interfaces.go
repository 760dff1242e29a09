package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key or record does not exist.
var ErrNotFound = errors.New("not found")

// Entry is one key-value pair held in the local store.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt string
}

// LocalStoreRepo is the device-local key-value area. It plays the part of
// browser local storage: small string values under flat keys.
type LocalStoreRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) (int, error)
}
