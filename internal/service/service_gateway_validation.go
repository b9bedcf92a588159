// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/validators"
	"github.com/MKhiriev/go-secret-vault/models"
)

// PakeGatewayValidationService rejects malformed requests before they reach
// the gateway, so a bad request never creates a session or touches the
// engine.
type PakeGatewayValidationService struct {
	inner     PakeGateway
	validator validators.Validator
}

func NewPakeGatewayValidationService() PakeGatewayWrapper {
	return &PakeGatewayValidationService{
		validator: validators.NewSecretTagValidator(),
	}
}

func (v *PakeGatewayValidationService) RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RegisterStartResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.RegisterStart(ctx, req)
}

func (v *PakeGatewayValidationService) RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.RegisterFinish(ctx, req)
}

func (v *PakeGatewayValidationService) LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginStartResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.LoginStart(ctx, req)
}

func (v *PakeGatewayValidationService) LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginFinishResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.LoginFinish(ctx, req)
}

func (v *PakeGatewayValidationService) UnwrapVaultKey(ctx context.Context, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UnwrapKeyResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UnwrapVaultKey(ctx, req)
}

func (v *PakeGatewayValidationService) Wrap(inner PakeGateway) PakeGateway {
	v.inner = inner
	return v
}
