// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadServerSetup_FromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerSetupRepository(ctrl)
	want := pake.GenerateServerSetup()

	setup, err := service.LoadServerSetup(context.Background(), config.Opaque{ServerSetup: want.Encode()}, repo, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, want, setup)
}

func TestLoadServerSetup_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerSetupRepository(ctrl)

	_, err := service.LoadServerSetup(context.Background(), config.Opaque{ServerSetup: "!!"}, repo, logger.Nop())
	assert.ErrorIs(t, err, pake.ErrInvalidSetup)
}

func TestLoadServerSetup_FromDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerSetupRepository(ctrl)
	ctx := context.Background()
	want := pake.GenerateServerSetup()

	repo.EXPECT().GetServerSetup(ctx).Return(want.Encode(), nil)

	setup, err := service.LoadServerSetup(ctx, config.Opaque{}, repo, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, want, setup)
}

func TestLoadServerSetup_GeneratesWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerSetupRepository(ctrl)
	ctx := context.Background()
	winner := pake.GenerateServerSetup()

	repo.EXPECT().GetServerSetup(ctx).Return("", store.ErrServerSetupNotFound)
	repo.EXPECT().SaveServerSetup(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, encoded string) (string, error) {
		_, err := pake.DecodeServerSetup(encoded)
		require.NoError(t, err)
		// another instance got there first
		return winner.Encode(), nil
	})

	setup, err := service.LoadServerSetup(ctx, config.Opaque{}, repo, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, winner, setup)
}

func TestLoadServerSetup_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerSetupRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().GetServerSetup(ctx).Return("", errors.New("connection refused"))

	_, err := service.LoadServerSetup(ctx, config.Opaque{}, repo, logger.Nop())
	assert.ErrorIs(t, err, service.ErrStorage)
}
