// Package session persists the authenticated session's fields as
// key/value rows in the local database.
package session

import "context"

// Repository is the key/value access contract for session fields.
// Get returns (nil, nil) when the key is absent. Delete removes the
// row rather than storing an empty value.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
