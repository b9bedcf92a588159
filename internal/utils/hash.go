// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing used to pseudonymise user ids
// and client addresses before they reach audit logs.
//
// Hash instances are pooled to avoid an allocation per event.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a pooled hasher.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashString returns the hex encoded HMAC-SHA256 of s. An empty input
// yields an empty string so that absent identifiers stay absent.
func (h *Hasher) HashString(s string) string {
	if s == "" {
		return ""
	}
	return hex.EncodeToString(h.Hash([]byte(s)))
}
