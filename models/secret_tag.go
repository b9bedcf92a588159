// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"errors"
	"time"
)

// TagIDLength is the fixed width of a secret tag identifier in bytes.
const TagIDLength = 16

// ErrInvalidTagID is returned when a textual tag id is not 32 hex digits.
var ErrInvalidTagID = errors.New("tag id must be 32 hex characters")

// TagID is the pseudonymous, deterministic identifier of a secret tag.
// It is derived from the OPAQUE registration record and never from the
// phrase itself. In JSON and URLs it is rendered as lower-case hex.
type TagID [TagIDLength]byte

// ParseTagID decodes the hex form of a tag id.
func ParseTagID(s string) (TagID, error) {
	var id TagID
	if err := id.UnmarshalText([]byte(s)); err != nil {
		return TagID{}, err
	}
	return id, nil
}

// TagIDFromBytes copies b into a TagID. b must be exactly TagIDLength bytes.
func TagIDFromBytes(b []byte) (TagID, error) {
	var id TagID
	if len(b) != TagIDLength {
		return id, ErrInvalidTagID
	}
	copy(id[:], b)
	return id, nil
}

func (id TagID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns a copy of the identifier as a slice.
func (id TagID) Bytes() []byte {
	b := make([]byte, TagIDLength)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the all-zero value.
func (id TagID) IsZero() bool {
	return id == TagID{}
}

func (id TagID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TagID) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(TagIDLength) {
		return ErrInvalidTagID
	}
	if _, err := hex.Decode(id[:], text); err != nil {
		return ErrInvalidTagID
	}
	return nil
}

// SecretTag is the durable record of a registered secret tag: its
// user-visible metadata plus the opaque cryptographic material handed back to
// the PAKE engine at login. The cryptographic fields are never interpreted
// beyond pass-through and never serialized to clients.
type SecretTag struct {
	// TagID is globally unique.
	TagID TagID `json:"tag_id"`

	// UserID is the owner of the tag.
	UserID int64 `json:"-"`

	// TagName is unique per user, 1-100 characters after trimming.
	TagName string `json:"tag_name"`

	// Color is normalized to upper-case "#RRGGBB".
	Color string `json:"color"`

	// Salt is the 16-byte tag handle issued at registration start. It doubles
	// as the OPAQUE credential identifier.
	Salt []byte `json:"-"`

	// VerifierKV is the 32-byte client public key from the registration record.
	VerifierKV []byte `json:"-"`

	// OpaqueEnvelope is the serialized OPAQUE registration record.
	OpaqueEnvelope []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the SecretTag model.
func (t SecretTag) TableName() string {
	return "secret_tags"
}

// Summary strips every cryptographic field from the tag.
func (t SecretTag) Summary() SecretTagSummary {
	return SecretTagSummary{
		TagID:     t.TagID,
		TagName:   t.TagName,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// SecretTagSummary is the client-facing view of a SecretTag.
type SecretTagSummary struct {
	TagID     TagID     `json:"tag_id"`
	TagName   string    `json:"tag_name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// WrappedKeyCount is set by registration finish only.
	WrappedKeyCount int `json:"wrapped_key_count,omitempty"`
}

// SecretTagUpdate carries a partial update of tag metadata.
// Only non-nil fields are applied.
type SecretTagUpdate struct {
	TagName *string `json:"tag_name,omitempty"`
	Color   *string `json:"color,omitempty"`
}
