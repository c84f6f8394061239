// Package store persists user records keyed by username and secret code.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learnmaths/internal/user"
)

// Driver names accepted by Open.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// ErrUnknownDriver is returned by Open for unsupported drivers.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store is a keyed collection of user records.
type Store interface {
	Get(ctx context.Context, key string) (user.Record, bool, error)
	Put(ctx context.Context, key string, record user.Record) error
	Close() error
}

// Open returns the store backend for driver at path.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverJSON:
		return OpenJSON(path)
	case DriverSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
