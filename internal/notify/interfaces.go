// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Notifier shows transient, user-visible messages (toasts).
type Notifier interface {
	Info(message string)
	Success(message string)
	Warning(message string)
	Error(message string)
}

// Translator resolves a message key to text in the active locale. Unknown
// keys are returned unchanged.
type Translator interface {
	T(key string) string
}
