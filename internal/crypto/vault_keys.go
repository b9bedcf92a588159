// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	josecipher "github.com/go-jose/go-jose/v3/cipher"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of export keys, data keys and KEKs.
	KeySize = 32

	// WrappedKeySize is KeySize plus the 8-byte AES-KW integrity block.
	WrappedKeySize = KeySize + 8

	// TagIDSize is the length of a derived tag identifier.
	TagIDSize = 16

	// TagHandleSize is the length of a registration tag handle.
	TagHandleSize = 16

	tagIDDomain = "secret-tag-id:v1"
)

// vaultKeyDeriver is the private implementation of [VaultKeyDeriver].
type vaultKeyDeriver struct {
	rand io.Reader
}

// NewVaultKeyDeriver constructs a [VaultKeyDeriver] backed by the OS CSPRNG.
func NewVaultKeyDeriver() VaultKeyDeriver {
	return &vaultKeyDeriver{rand: rand.Reader}
}

// DeriveVaultKeys implements [VaultKeyDeriver] with HKDF-SHA256. The export
// key is the input keying material, the context strings
// "vault:<id>:data" and "vault:<id>:kek" are the HKDF info parameters.
func (d *vaultKeyDeriver) DeriveVaultKeys(exportKey []byte, vaultID string) ([]byte, []byte, error) {
	if len(exportKey) != KeySize {
		return nil, nil, ErrInvalidExportKey
	}
	if vaultID == "" {
		return nil, nil, ErrInvalidVaultID
	}

	dataKey, err := expand(exportKey, "vault:"+vaultID+":data")
	if err != nil {
		return nil, nil, err
	}

	kek, err := expand(exportKey, "vault:"+vaultID+":kek")
	if err != nil {
		d.Zero(dataKey)
		return nil, nil, err
	}

	return dataKey, kek, nil
}

// Wrap implements [VaultKeyDeriver] using RFC 3394 AES key wrap with a
// 256-bit KEK. The output is always WrappedKeySize bytes.
func (d *vaultKeyDeriver) Wrap(kek, dataKey []byte) ([]byte, error) {
	if len(kek) != KeySize || len(dataKey) != KeySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("error creating kek cipher: %w", err)
	}

	wrapped, err := josecipher.KeyWrap(block, dataKey)
	if err != nil {
		return nil, fmt.Errorf("error wrapping data key: %w", err)
	}

	return wrapped, nil
}

// Unwrap implements [VaultKeyDeriver]. The integrity check of AES-KW makes
// it fail closed: a flipped bit or the wrong KEK is an error, never a
// truncated or garbage key.
func (d *vaultKeyDeriver) Unwrap(kek, wrapped []byte) ([]byte, error) {
	if len(kek) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(wrapped) != WrappedKeySize {
		return nil, ErrInvalidWrapSize
	}

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("error creating kek cipher: %w", err)
	}

	dataKey, err := josecipher.KeyUnwrap(block, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnwrapFailed, err)
	}

	return dataKey, nil
}

// TagID implements [VaultKeyDeriver] as a domain-separated BLAKE2b-128
// digest of the serialized registration record.
func (d *vaultKeyDeriver) TagID(registrationRecord []byte) []byte {
	h, err := blake2b.New(TagIDSize, nil)
	if err != nil {
		// only reachable with an invalid size or key, both constant here
		panic(err)
	}
	h.Write([]byte(tagIDDomain))
	h.Write(registrationRecord)
	return h.Sum(nil)
}

// NewTagHandle implements [VaultKeyDeriver].
func (d *vaultKeyDeriver) NewTagHandle() ([]byte, error) {
	handle := make([]byte, TagHandleSize)
	if _, err := io.ReadFull(d.rand, handle); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return handle, nil
}

// Zero implements [VaultKeyDeriver] with memguard.WipeBytes.
func (d *vaultKeyDeriver) Zero(buffers ...[]byte) {
	Zero(buffers...)
}

// Zero wipes every buffer in place. Nil and empty slices are ignored.
func Zero(buffers ...[]byte) {
	for _, b := range buffers {
		if len(b) > 0 {
			memguard.WipeBytes(b)
		}
	}
}

func expand(secret []byte, info string) ([]byte, error) {
	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("error deriving key: %w", err)
	}
	return out, nil
}
