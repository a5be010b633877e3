// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/crypto"
)

// SealSaltKey holds the base64 Argon2id salt of a sealed store. It is stored
// in clear next to the sealed values.
const SealSaltKey = "atm-seal-salt"

// sealedKeyValueStore encrypts every value before handing it to inner.
type sealedKeyValueStore struct {
	inner  KeyValueStore
	sealer crypto.Sealer
}

// NewSealedKeyValueStore wraps inner so that values are sealed with sealer.
func NewSealedKeyValueStore(inner KeyValueStore, sealer crypto.Sealer) KeyValueStore {
	return &sealedKeyValueStore{inner: inner, sealer: sealer}
}

// OpenSealedKeyValueStore reads the salt from inner (generating and storing
// one on first use), derives the key from passphrase and returns the sealed
// wrapper.
func OpenSealedKeyValueStore(ctx context.Context, inner KeyValueStore, passphrase string, params crypto.KDFParams) (KeyValueStore, error) {
	salt, err := loadOrCreateSalt(ctx, inner)
	if err != nil {
		return nil, err
	}

	sealer, err := crypto.NewSealer(passphrase, salt, params)
	if err != nil {
		return nil, fmt.Errorf("create sealer: %w", err)
	}

	return NewSealedKeyValueStore(inner, sealer), nil
}

func loadOrCreateSalt(ctx context.Context, inner KeyValueStore) ([]byte, error) {
	encoded, err := inner.Get(ctx, SealSaltKey)
	if err == nil {
		salt, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: seal salt: %w", ErrMalformedValue, decodeErr)
		}
		return salt, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("read seal salt: %w", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := inner.Set(ctx, SealSaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("store seal salt: %w", err)
	}
	return salt, nil
}

func (s *sealedKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	blob, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	plain, err := s.sealer.Open(blob)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	return string(plain), nil
}

func (s *sealedKeyValueStore) Set(ctx context.Context, key, value string) error {
	blob, err := s.sealer.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, blob)
}

func (s *sealedKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *sealedKeyValueStore) Close() error {
	return s.inner.Close()
}
