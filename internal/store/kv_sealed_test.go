// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-sync/internal/mock"
)

// ── sealedKeyValueStore с моками ─────────────────────────────────────────────

func TestSealedKeyValueStore_SetSealsBeforeWriting(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	gomock.InOrder(
		sealer.EXPECT().Seal([]byte("plain")).Return("blob", nil),
		inner.EXPECT().Set(ctx, "k", "blob").Return(nil),
	)

	require.NoError(t, NewSealedKeyValueStore(inner, sealer).Set(ctx, "k", "plain"))
}

func TestSealedKeyValueStore_SealErrorSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)
	sealErr := errors.New("no entropy")

	sealer.EXPECT().Seal(gomock.Any()).Return("", sealErr)
	// inner.Set не должен вызываться

	err := NewSealedKeyValueStore(inner, sealer).Set(ctx, "k", "plain")
	assert.ErrorIs(t, err, sealErr)
}

func TestSealedKeyValueStore_GetPassesNotFoundThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	inner.EXPECT().Get(ctx, "missing").Return("", ErrKeyNotFound)

	_, err := NewSealedKeyValueStore(inner, sealer).Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSealedKeyValueStore_GetOpensBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	inner.EXPECT().Get(ctx, "k").Return("blob", nil)
	sealer.EXPECT().Open("blob").Return([]byte("plain"), nil)

	v, err := NewSealedKeyValueStore(inner, sealer).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "plain", v)
}

func TestSealedKeyValueStore_DeleteAndCloseDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	inner.EXPECT().Delete(ctx, "k").Return(nil)
	inner.EXPECT().Close().Return(nil)

	kv := NewSealedKeyValueStore(inner, sealer)
	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Close())
}
