package service

import (
	stderrs "errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/chainmapper"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service owns a configured logger.Logger and the writers behind it.
type Service struct {
	// WorkingDir is the base of Config.RelLogFileDir. Required for file
	// logging only.
	WorkingDir string
	Config     *Config
	// Console receives console output. Nil means os.Stderr.
	Console io.Writer

	logger      atomic.Pointer[logger.Logger]
	initialized atomic.Bool

	mu         sync.Mutex
	fileWriter *lumberjack.Logger
	output     *closableWriter
}

// New creates an uninitialized Service.
func New(workingDir string, cfg *Config) *Service {
	return &Service{WorkingDir: workingDir, Config: cfg}
}

// Initialize validates the configuration and builds the logger. Calling it
// again after a successful call does nothing until Close is called.
func (s *Service) Initialize() error {
	const op errors.Op = "service.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized.Load() {
		return nil
	}

	if s.Config == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	if err := s.Config.Validate(); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if !s.Config.ConsoleLogging && !s.Config.FileLogging {
		return errors.New(op).Msg(errMsgNoChannels)
	}

	if s.Config.FileLogging {
		if s.WorkingDir == emptyString {
			return errors.New(op).Msg(errMsgWorkingDirNotSet)
		}

		dir := filepath.Join(s.WorkingDir, s.Config.RelLogFileDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New(op).Err(err).Msg(errMsgLogDir)
		}
	}

	var closer io.Closer

	writers := s.initializeWriters()
	if s.fileWriter != nil {
		closer = s.fileWriter
	}

	s.output = newClosableWriter(io.MultiWriter(writers...), closer)

	lgr := logger.New(s.newAdapter(s.output), s.loggerOptions()...)
	if s.Config.Name != emptyString {
		lgr = lgr.WithName(s.Config.Name)
	}

	s.logger.Store(&lgr)
	s.initialized.Store(true)

	return nil
}

// Level strings were validated by Config.Validate.
func (s *Service) loggerOptions() []logger.Option {
	level, _ := logger.ParseLevel(s.Config.Level)
	opts := []logger.Option{logger.WithMaxLevel(level)}

	if s.Config.CallerLevel != emptyString {
		callerLevel, _ := logger.ParseLevel(s.Config.CallerLevel)
		opts = append(opts, logger.WithCallerAtLevel(callerLevel))
	}

	if s.Config.ErrorChain {
		opts = append(opts, logger.WithErrorMapper(chainmapper.Map))
	}

	return opts
}

// Logger returns the configured logger, or a no-op logger when the service
// is not initialized.
func (s *Service) Logger() logger.Logger {
	if s == nil || !s.initialized.Load() {
		return logger.NewNop()
	}

	lgr := s.logger.Load()
	if lgr == nil {
		return logger.NewNop()
	}

	return *lgr
}

// Initialized reports whether Initialize succeeded and Close was not called
// since.
func (s *Service) Initialized() bool {
	return s != nil && s.initialized.Load()
}

// Close flushes the logger and closes the log file. Loggers obtained before
// Close become silent: their records are dropped.
// It's safe to call Close multiple times.
func (s *Service) Close() error {
	const op errors.Op = "service.Service.Close"
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized.Swap(false) {
		return nil
	}

	var errs []error

	if lgr := s.logger.Swap(nil); lgr != nil {
		if err := lgr.Flush(); err != nil {
			errs = append(errs, errors.New(op).Err(err).Msg(errMsgFlush))
		}
	}

	if s.output != nil {
		if err := s.output.Close(); err != nil {
			errs = append(errs, errors.New(op).Err(err).Msg(errMsgCloseFile))
		}

		s.output = nil
	}

	s.fileWriter = nil

	return stderrs.Join(errs...)
}
