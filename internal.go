package librarylog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (s *Service) initializeRollingFileLogger(exeName string) *lumberjack.Logger {
	if exeName == emptyString {
		exeName = "app"
	}

	path := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir, exeName+".log")

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.LoggingConfig.LogFileMaxBackups,
		MaxAge:     s.LoggingConfig.LogFileMaxAgeDays,
		MaxSize:    s.LoggingConfig.LogFileMaxSizeMB,
		Compress:   s.LoggingConfig.LogFileCompress,
	}
}

func (s *Service) initializeWriters(exeName string) []io.Writer {
	if s.Writer != nil {
		return []io.Writer{s.Writer}
	}

	var writers []io.Writer
	if s.LoggingConfig.FileLogging {
		s.fileWriter = s.initializeRollingFileLogger(exeName)
		writers = append(writers, s.fileWriter)
	}
	if s.LoggingConfig.ConsoleLogging {
		timeFormat := s.LoggingConfig.ConsoleTimeFormat
		if timeFormat == emptyString {
			timeFormat = time.RFC3339
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    s.LoggingConfig.ConsoleNoColor,
			TimeFormat: timeFormat,
		})
	}

	return writers
}
