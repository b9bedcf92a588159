// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_key_deriver_mock.go -package=mock

// VaultKeyDeriver owns the key hierarchy below an OPAQUE export key.
// It knows nothing about the network, the database or users: it only derives,
// wraps and unwraps keys.
//
// Scheme:
//
//	dataKey = HKDF(exportKey, "vault:<id>:data")   (step 1)
//	kek     = HKDF(exportKey, "vault:<id>:kek")    (step 1)
//	wrapped = AES-KW(kek, dataKey)                 (step 2, 40 bytes)
//	dataKey = AES-KW⁻¹(kek, wrapped)               (login, fails closed)
//
// Callers own every returned secret buffer and must pass it to Zero once done.
type VaultKeyDeriver interface {
	// DeriveVaultKeys returns two independent 32-byte keys bound to vaultID.
	// exportKey must be 32 bytes and is never used directly as either key.
	DeriveVaultKeys(exportKey []byte, vaultID string) (dataKey, kek []byte, err error)

	// Wrap encrypts a 32-byte dataKey under a 32-byte kek (RFC 3394).
	Wrap(kek, dataKey []byte) ([]byte, error)

	// Unwrap reverses Wrap. Any tampering or a wrong kek yields ErrUnwrapFailed.
	Unwrap(kek, wrapped []byte) ([]byte, error)

	// TagID derives the 16-byte tag identifier from a registration record.
	TagID(registrationRecord []byte) []byte

	// NewTagHandle returns 16 fresh random bytes.
	NewTagHandle() ([]byte, error)

	// Zero wipes every buffer in place.
	Zero(buffers ...[]byte)
}
