// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// VaultClaims is the claim set of a vault-access token. The subject holds
// the user id; tag and vault ids are private claims.
type VaultClaims struct {
	jwt.RegisteredClaims

	TagID   string `json:"tid"`
	VaultID string `json:"vid"`
}

// VaultToken is a parsed and verified vault-access token.
type VaultToken struct {
	UserID  int64
	TagID   TagID
	VaultID string

	// SignedString is the compact JWS representation of the token.
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t VaultToken) String() string {
	return t.SignedString
}
