// Package iologger initializes the global slog logger from the
// application config, including the log-file destination.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/logger"
)

// Init sets the global slog logger. When the destination is "file"
// the log lands in logDir; append preserves logs of previous sessions.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	var writer io.Writer

	switch cfg.Destination {
	case "file":
		logPath := filepath.Join(logDir, config.AppName+".log")
		var file *os.File
		var err error
		if append {
			file, err = os.OpenFile(
				logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		} else {
			file, err = os.Create(logPath)
		}
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = logger.Writer(cfg.Destination)
	}

	slog.SetDefault(logger.New(writer, cfg))
	return nil
}
