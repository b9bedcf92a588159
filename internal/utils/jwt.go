// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned when a vault token cannot be issued
// because a required parameter is empty.
var ErrInvalidTokenParams = errors.New("invalid params for generating vault token")

// GenerateVaultToken creates a signed HMAC-SHA256 vault-access token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat) / ExpiresAt (exp)
//   - ID        (jti): a unique token id
//   - tid / vid: the tag id (hex) and vault id the token grants access to
//
// Example usage:
//
//	token, err := utils.GenerateVaultToken("vault", 42, tagID, vaultID, jti, 5*time.Minute, "secret")
func GenerateVaultToken(issuer string, userID int64, tagID models.TagID, vaultID, tokenID string,
	ttl time.Duration, signKey string) (models.VaultToken, time.Time, error) {
	if issuer == "" || ttl <= 0 || signKey == "" || vaultID == "" {
		return models.VaultToken{}, time.Time{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &models.VaultClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
		TagID:   tagID.String(),
		VaultID: vaultID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.VaultToken{}, time.Time{}, fmt.Errorf("error occurred during singing vault token: %w", err)
	}

	return models.VaultToken{
		UserID:       userID,
		TagID:        tagID,
		VaultID:      vaultID,
		SignedString: tokenString,
	}, expiresAt, nil
}

// ValidateAndParseVaultToken verifies the signature, issuer and expiry of a
// vault-access token and extracts its claims. Only HS256 is accepted.
func ValidateAndParseVaultToken(tokenString, tokenSignKey, tokenIssuer string) (models.VaultToken, error) {
	claims := &models.VaultClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired())
	if err != nil {
		return models.VaultToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.VaultToken{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.VaultToken{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	tagID, err := models.ParseTagID(claims.TagID)
	if err != nil {
		return models.VaultToken{}, fmt.Errorf("error occurred during parsing tag id claim: %w", err)
	}

	return models.VaultToken{
		UserID:       userID,
		TagID:        tagID,
		VaultID:      claims.VaultID,
		SignedString: tokenString,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
