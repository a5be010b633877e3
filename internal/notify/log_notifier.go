// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-account-sync/internal/logger"
)

// LogNotifier writes every notification to the log so toasts leave a trace
// after they disappear from the screen.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Info(message string)    { n.write(zerolog.InfoLevel, LevelInfo, message) }
func (n *LogNotifier) Success(message string) { n.write(zerolog.InfoLevel, LevelSuccess, message) }
func (n *LogNotifier) Warning(message string) { n.write(zerolog.WarnLevel, LevelWarning, message) }
func (n *LogNotifier) Error(message string)   { n.write(zerolog.ErrorLevel, LevelError, message) }

func (n *LogNotifier) write(zl zerolog.Level, level Level, message string) {
	n.logger.WithLevel(zl).
		Str("notification", level.String()).
		Msg(message)
}
