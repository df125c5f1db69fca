package librarylog

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Station-Manager/config"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is a zerolog backed sink. Its Keyed and Named methods satisfy
// KeyedFactory and NamedFactory, so a provider can route every call-site
// through it:
//
//	svc := librarylog.NewService(dir, cfg)
//	if err := svc.Initialize(); err != nil { ... }
//	defer svc.Close()
//	provider.ConfigureConsole(librarylog.KeyedOut{Keyed: svc.Keyed})
type Service struct {
	WorkingDir string          `di.inject:"WorkingDir"`
	AppConfig  *config.Service `di.inject:"config"`
	// LoggingConfig takes precedence over AppConfig when both are set.
	LoggingConfig *types.LoggingConfig
	// Writer replaces the configured file and console channels when set.
	Writer io.Writer

	logger        atomic.Pointer[zerolog.Logger]
	fileWriter    *lumberjack.Logger
	isInitialized atomic.Bool
	mu            sync.Mutex
}

func NewService(workingDir string, cfg *types.LoggingConfig) *Service {
	return &Service{WorkingDir: workingDir, LoggingConfig: cfg}
}

// Initialize validates the configuration and builds the zerolog logger.
func (s *Service) Initialize() error {
	const op errors.Op = "librarylog.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return nil
	}

	if s.LoggingConfig == nil && s.AppConfig != nil {
		cfg := s.AppConfig.LoggingConfig()
		s.LoggingConfig = &cfg
	}

	if err := validateConfig(s.LoggingConfig); err != nil {
		return errors.New(op).Err(err).Msg(err.Error())
	}

	level, err := parseLevel(s.LoggingConfig.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	exeName := emptyString
	if s.Writer == nil && s.LoggingConfig.FileLogging {
		if s.WorkingDir == emptyString {
			return errors.New(op).Msg(errMsgWorkingDirNotSet)
		}
		dir := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir)
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.New(op).Err(err).Msg("Failed to create logs directory.")
		}
		if exeName, err = utils.ExecName(true); err != nil {
			return errors.New(op).Err(err).Msg("Failed to get executable name.")
		}
	}

	writers := s.initializeWriters(exeName)
	if len(writers) == 0 {
		return errors.New(op).Msg(errMsgNoChannels)
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(w).Level(level)
	if s.LoggingConfig.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if s.LoggingConfig.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(s.LoggingConfig.SkipFrameCount).Logger()
	}

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Close releases the rolling file, if any. It is safe to call more than once.
func (s *Service) Close() error {
	const op errors.Op = "librarylog.Service.Close"
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialized.Swap(false) {
		return nil
	}
	s.logger.Store(nil)

	if s.fileWriter != nil {
		fw := s.fileWriter
		s.fileWriter = nil
		if err := fw.Close(); err != nil {
			return errors.New(op).Err(err).Msg("Failed to close log file.")
		}
	}
	return nil
}

// Keyed returns a sink tagging each entry with the rendered source path.
func (s *Service) Keyed(segments []Segment) ExtLogger {
	return &serviceLogger{svc: s, source: Source{segments: segments}.String()}
}

// Named is Keyed for callers that only know segment names.
func (s *Service) Named(names []string) ExtLogger {
	segments := make([]Segment, len(names))
	for i, n := range names {
		segments[i] = Segment{Name: n}
	}
	return s.Keyed(segments)
}

func (s *Service) emit(meta Meta, source, message string, fields Fields) {
	if s == nil || !s.isInitialized.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}
	level := zerologLevel(meta.Level)
	if logger.GetLevel() > level {
		return
	}

	e := logger.WithLevel(level)
	if e == nil {
		return
	}
	e.Str("audience", meta.Audience.String()).Str("category", meta.Category.String())
	if source != emptyString {
		e.Str("source", source)
	}
	appendFields(e, fields).Msg(message)
}

type serviceLogger struct {
	svc    *Service
	source string
}

func (l *serviceLogger) Error(meta Meta, message string, fields Fields) {
	l.svc.emit(meta, l.source, message, fields)
}

func (l *serviceLogger) Warn(meta Meta, message string, fields Fields) {
	l.svc.emit(meta, l.source, message, fields)
}

func (l *serviceLogger) Debug(meta Meta, message string, fields Fields) {
	l.svc.emit(meta, l.source, message, fields)
}

func (l *serviceLogger) Trace(meta Meta, message string, fields Fields) {
	l.svc.emit(meta, l.source, message, fields)
}
