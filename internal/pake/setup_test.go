// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerSetup_EncodeDecode(t *testing.T) {
	setup := GenerateServerSetup()
	require.NoError(t, setup.Validate())

	decoded, err := DecodeServerSetup(setup.Encode())
	require.NoError(t, err)
	assert.Equal(t, setup, decoded)
}

func TestGenerateServerSetup_Unique(t *testing.T) {
	a := GenerateServerSetup()
	b := GenerateServerSetup()
	assert.NotEqual(t, a.OPRFSeed, b.OPRFSeed)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}

func TestDecodeServerSetup_Invalid(t *testing.T) {
	valid := GenerateServerSetup().Encode()
	raw, err := base64.StdEncoding.DecodeString(valid)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "not base64", input: "%%%"},
		{name: "empty", input: ""},
		{name: "truncated", input: base64.StdEncoding.EncodeToString(raw[:len(raw)-1])},
		{name: "trailing bytes", input: base64.StdEncoding.EncodeToString(append(raw, 0))},
		{name: "empty fields", input: base64.StdEncoding.EncodeToString([]byte{0, 0, 0, 0, 0, 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeServerSetup(tt.input)
			assert.ErrorIs(t, err, ErrInvalidSetup)
		})
	}
}

func TestServerSetup_ValidateNil(t *testing.T) {
	var setup *ServerSetup
	assert.ErrorIs(t, setup.Validate(), ErrInvalidSetup)
	assert.ErrorIs(t, (&ServerSetup{OPRFSeed: []byte{1}}).Validate(), ErrInvalidSetup)
}
