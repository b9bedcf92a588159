// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, KeySize)
	_, err := rand.Read(k)
	require.NoError(t, err)
	return k
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

// ── DeriveVaultKeys ──────────────────────────────────────────────────────────

func TestDeriveVaultKeys_DeterministicAndSeparated(t *testing.T) {
	d := NewVaultKeyDeriver()
	exportKey := randomKey(t)

	data1, kek1, err := d.DeriveVaultKeys(exportKey, "vault-1")
	require.NoError(t, err)
	data2, kek2, err := d.DeriveVaultKeys(exportKey, "vault-1")
	require.NoError(t, err)

	assert.Len(t, data1, KeySize)
	assert.Len(t, kek1, KeySize)
	assert.Equal(t, data1, data2)
	assert.Equal(t, kek1, kek2)

	assert.NotEqual(t, data1, kek1, "data key and kek must be domain separated")
	assert.NotEqual(t, exportKey, data1, "export key must never be used as the data key")
	assert.NotEqual(t, exportKey, kek1, "export key must never be used as the kek")
}

func TestDeriveVaultKeys_VaultBinding(t *testing.T) {
	d := NewVaultKeyDeriver()
	exportKey := randomKey(t)

	dataA, kekA, err := d.DeriveVaultKeys(exportKey, "a")
	require.NoError(t, err)
	dataB, kekB, err := d.DeriveVaultKeys(exportKey, "b")
	require.NoError(t, err)

	assert.NotEqual(t, dataA, dataB)
	assert.NotEqual(t, kekA, kekB)
}

func TestDeriveVaultKeys_InvalidInput(t *testing.T) {
	d := NewVaultKeyDeriver()

	_, _, err := d.DeriveVaultKeys(make([]byte, 31), "v")
	assert.ErrorIs(t, err, ErrInvalidExportKey)

	_, _, err = d.DeriveVaultKeys(nil, "v")
	assert.ErrorIs(t, err, ErrInvalidExportKey)

	_, _, err = d.DeriveVaultKeys(randomKey(t), "")
	assert.ErrorIs(t, err, ErrInvalidVaultID)
}

// ── Wrap / Unwrap ────────────────────────────────────────────────────────────

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	d := NewVaultKeyDeriver()

	for i := 0; i < 32; i++ {
		kek := randomKey(t)
		dataKey := randomKey(t)

		wrapped, err := d.Wrap(kek, dataKey)
		require.NoError(t, err)
		assert.Len(t, wrapped, WrappedKeySize)
		assert.False(t, bytes.Contains(wrapped, dataKey))

		got, err := d.Unwrap(kek, wrapped)
		require.NoError(t, err)
		assert.Equal(t, dataKey, got)
	}
}

func TestUnwrap_FailsOnEveryFlippedByte(t *testing.T) {
	d := NewVaultKeyDeriver()
	kek := randomKey(t)

	wrapped, err := d.Wrap(kek, randomKey(t))
	require.NoError(t, err)

	for i := range wrapped {
		tampered := bytes.Clone(wrapped)
		tampered[i] ^= 0x01

		got, err := d.Unwrap(kek, tampered)
		assert.ErrorIs(t, err, ErrUnwrapFailed, "byte %d", i)
		assert.Nil(t, got)
	}
}

func TestUnwrap_WrongKEK(t *testing.T) {
	d := NewVaultKeyDeriver()

	wrapped, err := d.Wrap(randomKey(t), randomKey(t))
	require.NoError(t, err)

	_, err = d.Unwrap(randomKey(t), wrapped)
	assert.ErrorIs(t, err, ErrUnwrapFailed)
}

func TestWrapUnwrap_InvalidSizes(t *testing.T) {
	d := NewVaultKeyDeriver()

	_, err := d.Wrap(make([]byte, 16), randomKey(t))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = d.Wrap(randomKey(t), make([]byte, 24))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = d.Unwrap(randomKey(t), make([]byte, WrappedKeySize-8))
	assert.ErrorIs(t, err, ErrInvalidWrapSize)

	_, err = d.Unwrap(make([]byte, 10), make([]byte, WrappedKeySize))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

// ── TagID / NewTagHandle ─────────────────────────────────────────────────────

func TestTagID_Deterministic(t *testing.T) {
	d := NewVaultKeyDeriver()
	record := []byte("serialized-registration-record")

	first := d.TagID(record)
	assert.Len(t, first, TagIDSize)
	assert.Equal(t, first, d.TagID(bytes.Clone(record)))
	assert.NotEqual(t, first, d.TagID([]byte("another-record")))
}

func TestNewTagHandle(t *testing.T) {
	d := NewVaultKeyDeriver()

	a, err := d.NewTagHandle()
	require.NoError(t, err)
	b, err := d.NewTagHandle()
	require.NoError(t, err)

	assert.Len(t, a, TagHandleSize)
	assert.NotEqual(t, a, b)
}

func TestNewTagHandle_RandomFailure(t *testing.T) {
	d := &vaultKeyDeriver{rand: failingReader{}}

	_, err := d.NewTagHandle()
	assert.ErrorIs(t, err, ErrRandomSource)
}

// ── Zero ─────────────────────────────────────────────────────────────────────

func TestZero_WipesBuffers(t *testing.T) {
	a := []byte{1, 2, 3}
	b := randomKey(t)

	NewVaultKeyDeriver().Zero(a, nil, b, []byte{})

	assert.Equal(t, []byte{0, 0, 0}, a)
	assert.Equal(t, make([]byte, KeySize), b)
}
