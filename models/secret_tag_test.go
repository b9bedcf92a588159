// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagID(t *testing.T) {
	id, err := ParseTagID("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), id[15])
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", id.String())

	_, err = ParseTagID("00")
	assert.ErrorIs(t, err, ErrInvalidTagID)

	_, err = ParseTagID(strings.Repeat("zz", TagIDLength))
	assert.ErrorIs(t, err, ErrInvalidTagID)
}

func TestTagIDFromBytes(t *testing.T) {
	_, err := TagIDFromBytes(make([]byte, 15))
	assert.ErrorIs(t, err, ErrInvalidTagID)

	src := []byte("0123456789abcdef")
	id, err := TagIDFromBytes(src)
	require.NoError(t, err)
	assert.Equal(t, src, id.Bytes())
	assert.False(t, id.IsZero())
	assert.True(t, TagID{}.IsZero())
}

func TestTagID_JSON(t *testing.T) {
	in := LoginStartRequest{TagID: TagID{0xab}, LoginRequest: []byte{1}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tag_id":"ab000000000000000000000000000000"`)

	var out LoginStartRequest
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.TagID, out.TagID)
}

func TestSecretTag_SummaryHidesCryptoMaterial(t *testing.T) {
	tag := SecretTag{
		TagID:          TagID{1},
		UserID:         7,
		TagName:        "Diary",
		Color:          "#FF0000",
		Salt:           []byte("salt"),
		VerifierKV:     []byte("kv"),
		OpaqueEnvelope: []byte("envelope"),
	}

	data, err := json.Marshal(tag)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "envelope")
	assert.NotContains(t, string(data), "user_id")

	s := tag.Summary()
	assert.Equal(t, tag.TagID, s.TagID)
	assert.Equal(t, "Diary", s.TagName)
}

func TestOpaqueSession_IsExpired(t *testing.T) {
	now := time.Now()
	s := OpaqueSession{ExpiresAt: now}

	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Nanosecond)))
	assert.True(t, SessionLoginStarted.Valid())
	assert.False(t, SessionState("unknown").Valid())
}
