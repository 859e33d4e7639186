// Package common contains shared sentinel errors used across the loan
// client's layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrAuthRequired means an action needs a session that is absent.
	// The request is never issued.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionExpired means a persisted token is past its expiry and
	// the stored session must be treated as absent.
	ErrSessionExpired = errors.New("session expired")
)
