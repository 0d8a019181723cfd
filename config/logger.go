package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

// LogConfig ...
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`

	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

const (
	logFormatConsole = "console"
	logOutputFile    = "file"
)

func (c LogConfig) level() zapcore.Level {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(c.Level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func (c LogConfig) encoder() zapcore.Encoder {
	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConf.EncodeCaller = zapcore.ShortCallerEncoder

	if c.Format == logFormatConsole {
		encoderConf.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConf)
	}
	return zapcore.NewJSONEncoder(encoderConf)
}

func (c LogConfig) writer() zapcore.WriteSyncer {
	if c.Output != logOutputFile {
		return zapcore.Lock(os.Stdout)
	}

	maxSize := c.MaxSize
	if maxSize == 0 {
		maxSize = 100
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    maxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	})
}

// NewLogger creates a zap logger, writing to a rotated file when output is file
func NewLogger(c LogConfig) *zap.Logger {
	core := zapcore.NewCore(c.encoder(), c.writer(), zap.NewAtomicLevelAt(c.level()))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
