// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// WrappedKeyLength is the size of an AES-KW wrapped 256-bit key.
	WrappedKeyLength = 40

	// KeyPurposeVaultData marks the key protecting vault content.
	KeyPurposeVaultData = "vault_data"

	// InitialKeyVersion is the version assigned at registration.
	InitialKeyVersion = 1
)

// WrappedKey is a vault data key encrypted under the tag's key-encryption
// key. It never exists without its parent SecretTag.
type WrappedKey struct {
	VaultID    string    `json:"vault_id"`
	TagID      TagID     `json:"tag_id"`
	WrappedKey []byte    `json:"wrapped_key"`
	KeyPurpose string    `json:"key_purpose"`
	KeyVersion int       `json:"key_version"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WrappedKey model.
func (k WrappedKey) TableName() string {
	return "wrapped_keys"
}
