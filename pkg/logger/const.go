package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	Int     = zap.Int
	Uint    = zap.Uint
	Float64 = zap.Float64
	String  = zap.String
	Error   = zap.Error
	Any     = zap.Any
)
