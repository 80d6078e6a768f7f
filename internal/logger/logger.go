// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package logger configures process-wide logrus output and hands out prefixed entries.
package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Config controls log output.
type Config struct {
	// File is an optional rotated log file written in addition to stderr.
	File string `koanf:"file"`
	// Verbosity maps to level: 0 info, 1 debug, 2+ trace.
	Verbosity int `koanf:"verbosity"`
	// Quiet disables stderr output.
	Quiet bool `koanf:"quiet"`
}

// Init applies config to the standard logrus logger.
func Init(cfg Config) {
	logrus.SetLevel(LevelFor(cfg.Verbosity))

	writers := make([]io.Writer, 0, 2)
	if !cfg.Quiet {
		writers = append(writers, os.Stderr)
	}

	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5,
			MaxAge:     14,
			MaxBackups: 5,
		})
	}

	if len(writers) == 0 {
		logrus.SetOutput(io.Discard)
	} else {
		logrus.SetOutput(io.MultiWriter(writers...))
	}

	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
}

// LevelFor maps verbosity count to logrus level.
func LevelFor(verbosity int) logrus.Level {
	switch {
	case verbosity == 1:
		return logrus.DebugLevel
	case verbosity > 1:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// GetLogger returns entry tagged with component prefix.
func GetLogger(prefix string) *logrus.Entry {
	return logrus.WithField("prefix", prefix)
}
