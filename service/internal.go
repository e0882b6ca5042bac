package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Record keys written by a backend, used to lay out console output.
type recordKeys struct {
	time    string
	level   string
	message string
}

var backendKeys = map[string]recordKeys{
	BackendZerolog: {time: zerolog.TimestampFieldName, level: zerolog.LevelFieldName, message: zerolog.MessageFieldName},
	BackendZap:     {time: "ts", level: "level", message: "msg"},
	BackendLogrus:  {time: "time", level: "level", message: "msg"},
	BackendSlog:    {time: "time", level: "level", message: "msg"},
}

func logFileBaseName(name string) string {
	if name != emptyString {
		return strings.TrimSuffix(name, ".log")
	}

	exe, err := os.Executable()
	if err != nil {
		return "app"
	}

	base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if base == emptyString || base == "." {
		return "app"
	}

	return base
}

func (s *Service) initializeRollingFileLogger() *lumberjack.Logger {
	path := filepath.Join(s.WorkingDir, s.Config.RelLogFileDir, logFileBaseName(s.Config.LogFileName)+".log")

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.Config.LogFileMaxBackups,
		MaxAge:     s.Config.LogFileMaxAgeDays,
		MaxSize:    s.Config.LogFileMaxSizeMB,
		Compress:   s.Config.LogFileCompress,
	}
}

func (s *Service) consoleWriter(out io.Writer) io.Writer {
	if s.Config.Format == FormatJSON {
		return out
	}

	keys := backendKeys[s.backend()]

	cw := zerolog.ConsoleWriter{
		Out:     out,
		NoColor: s.Config.ConsoleNoColor,
		PartsOrder: []string{
			keys.time,
			keys.level,
			zerolog.CallerFieldName,
			keys.message,
		},
		FieldsExclude: []string{keys.time, keys.level, keys.message},
	}

	if s.Config.ConsoleTimeFormat != emptyString {
		cw.TimeFormat = s.Config.ConsoleTimeFormat
	}

	if !s.Config.WithTimestamp {
		cw.PartsExclude = []string{keys.time}
	}

	return cw
}

func (s *Service) initializeWriters() []io.Writer {
	var writers []io.Writer

	if s.Config.FileLogging {
		s.fileWriter = s.initializeRollingFileLogger()
		writers = append(writers, s.fileWriter)
	}

	if s.Config.ConsoleLogging {
		writers = append(writers, s.consoleWriter(s.consoleOut()))
	}

	return writers
}

func (s *Service) consoleOut() io.Writer {
	if s.Console != nil {
		return s.Console
	}

	return os.Stderr
}

func (s *Service) backend() string {
	if s.Config.Backend == emptyString {
		return BackendZerolog
	}

	return s.Config.Backend
}

// closableWriter forwards to w until Close. Loggers handed out before
// Service.Close still reference it, so their records are dropped instead of
// reopening the rolling file.
type closableWriter struct {
	mu     sync.RWMutex
	closed atomic.Bool
	w      io.Writer
	closer io.Closer
}

func newClosableWriter(w io.Writer, closer io.Closer) *closableWriter {
	return &closableWriter{w: w, closer: closer}
}

func (c *closableWriter) Write(p []byte) (int, error) {
	if c.closed.Load() {
		return len(p), nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	// Close may have won the race for the lock.
	if c.closed.Load() {
		return len(p), nil
	}

	return c.w.Write(p) //nolint:wrapcheck
}

// Close waits for in-flight writes, then closes the underlying closer once.
func (c *closableWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Swap(true) || c.closer == nil {
		return nil
	}

	return c.closer.Close() //nolint:wrapcheck
}
