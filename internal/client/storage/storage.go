// Package storage is the device-local key-value storage of the client.
//
// Everything the client persists between runs lives here: the token pair and
// the local cart. Three backends share one contract:
//
//   - SQLiteRepository: a single-file database, the default for the CLI.
//   - RedisRepository: keys under a prefix, for shared or containerised setups.
//   - MemoryRepository: process-local, used by tests and the "memory" backend.
//
// Missing keys read as (nil, nil). SetMany and Delete are atomic: either all
// given keys change or none do.
package storage

import (
	"context"
	"errors"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}
