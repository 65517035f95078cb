package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minefield/internal/batch"
	"github.com/vancomm/minefield/internal/board"
	"github.com/vancomm/minefield/internal/config"
)

var log = logrus.New()

func setupLogging(cfg *config.Config, stderr io.Writer) error {
	logLevel := cfg.LogLevel()
	log.SetLevel(logLevel)
	log.SetOutput(stderr)
	log.ReplaceHooks(make(logrus.LevelHooks))

	if cfg.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	batch.Log = log

	var handler slog.Handler = slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: slogLevel(logLevel),
	})
	if cfg.Development() {
		handler = tint.NewHandler(stderr, &tint.Options{
			Level: slogLevel(logLevel),
		})
	}
	board.Log = slog.New(handler)

	return nil
}

func slogLevel(l logrus.Level) slog.Level {
	switch {
	case l >= logrus.DebugLevel:
		return slog.LevelDebug
	case l == logrus.InfoLevel:
		return slog.LevelInfo
	case l == logrus.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
