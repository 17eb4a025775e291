// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger is the structured logger the solver and chain builders log
// skipped-UTXO / insufficient-funds / change-computation lines through.
// This is a library, not a daemon: nothing here logs above Warn.
type Logger struct {
	z         *zap.Logger
	buildID   string
}

// NewLogger builds a Logger around a zap.Logger. Pass zap.NewNop() in tests
// that don't want log output.
func NewLogger(z *zap.Logger) *Logger {
	return &Logger{z: z, buildID: uuid.NewString()}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return NewLogger(zap.NewNop())
}

func (l *Logger) with(fields ...zap.Field) []zap.Field {
	return append([]zap.Field{zap.String("buildID", l.buildID)}, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, l.with(fields...)...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, l.with(fields...)...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.z.Error(msg, l.with(fields...)...)
}
