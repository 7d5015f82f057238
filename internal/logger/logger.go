// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout habitsync.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly on *Logger.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout. role is attached to
// every entry ("client", "sync", ...) so logs from different components can
// be filtered. The caller field records the fully qualified function name
// instead of file:line.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger constructs a logger that writes to a "logs" file next to
// the executable, falling back to stdout when the file cannot be opened.
// A desktop client has no terminal to log to, so stdout is only the
// fallback.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	l := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with extra fields without touching the
// parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx via zerolog's
// WithContext and returns it as a *Logger. If ctx carries no logger, zerolog
// falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
