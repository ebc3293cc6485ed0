// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

// Logger receives the log records of an extraction. Keys and values
// alternate as in [log/slog], and a *slog.Logger satisfies the interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
