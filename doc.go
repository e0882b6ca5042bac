// Package logger provides a backend-agnostic, structured-first logging facade.
//
// A Logger wraps an Adapter, the only extension point for concrete backends
// (zerolog, zap, logrus, slog or the in-memory buffer used in tests). The
// Logger owns level filtering and the conversion of special values (names,
// errors, stack traces and call sites) into fields; adapters only emit.
//
// Key features
//   - Level gate first: a filtered call costs one integer comparison
//   - Immutable child loggers via WithFields, WithName and WithStackTrace
//   - Caller capture only at or above a configured severity
//   - Panic-safe error rendering, including typed nil errors
//   - Context propagation with ToCtx / FromCtx
//
// Typical usage
//
//	lgr := logger.New(zerologadapter.New(zerolog.New(os.Stderr)),
//		logger.WithMaxLevel(logger.LevelDebug),
//		logger.WithCallerAtLevel(logger.LevelWarning),
//	)
//	defer func() { _ = lgr.Flush() }()
//
//	db := lgr.WithName("db").WithFields(fields.F("shard", 3))
//	db.Info("connected")
//	db.Error("query failed", err, fields.F("table", "users"))
//
// Fields emitted per call are ordered: caller, logger name, error, then the
// fields passed to the call. Fields attached with WithFields or
// WithStackTrace are held by the adapter and rendered by the backend.
package logger
