// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts values that the sync client writes to local storage.
//
// The pending ledger contains full entity snapshots (tokens, account
// credentials), so when a passphrase is configured every value is sealed
// before it reaches the key-value store.
//
// Scheme:
//
//	Salt = GenerateSalt()                       (once per store, kept in clear)
//	Key  = DeriveKey(passphrase, Salt)          (Argon2id, in memory only)
//	Blob = base64(nonce || AES-GCM(Key, value))
type Sealer interface {
	// Seal encrypts plaintext and returns a base64 blob safe to persist.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails with ErrDecrypt on a wrong key or a
	// tampered blob.
	Open(blob string) ([]byte, error)
}
