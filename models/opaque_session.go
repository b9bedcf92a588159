// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionState is the protocol step an OpaqueSession was created by.
type SessionState string

const (
	SessionRegistrationStarted SessionState = "registration_started"
	SessionLoginStarted        SessionState = "login_started"
)

// Valid reports whether s is a known state.
func (s SessionState) Valid() bool {
	switch s {
	case SessionRegistrationStarted, SessionLoginStarted:
		return true
	}
	return false
}

// OpaqueSession is the server-side record of one in-flight registration or
// login. It is created by a *Start call and destroyed exactly once: by the
// matching *Finish (success or failure) or by the expiry sweep.
type OpaqueSession struct {
	// SessionID is a URL-safe encoding of 32 random bytes.
	SessionID string

	UserID int64

	// TagID is nil while a tag is being registered.
	TagID *TagID

	State SessionState

	// SessionData is server-only protocol state. It is never sent to clients.
	SessionData []byte

	ExpiresAt    time.Time
	LastActivity time.Time
}

// TableName returns the name of the database table
// associated with the OpaqueSession model.
func (s OpaqueSession) TableName() string {
	return "opaque_sessions"
}

// IsExpired reports whether the session is past its deadline at now.
func (s OpaqueSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
