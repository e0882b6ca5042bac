package service

import (
	"fmt"
	"testing"

	"github.com/Station-Manager/logger/fields"
)

func newFileService(b *testing.B, backend string) *Service {
	b.Helper()

	cfg := fileConfig()
	cfg.Level = "info"
	cfg.Backend = backend

	svc := New(b.TempDir(), cfg)
	if err := svc.Initialize(); err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() { _ = svc.Close() })

	return svc
}

func BenchmarkFileLogging(b *testing.B) {
	for _, backend := range []string{BackendZerolog, BackendZap, BackendLogrus, BackendSlog} {
		b.Run(backend, func(b *testing.B) {
			l := newFileService(b, backend).Logger()

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					l.Info("Benchmark log",
						fields.F("user_id", "user-123"),
						fields.F("count", i),
						fields.F("operation", "test"))
					i++
				}
			})
		})
	}
}

func BenchmarkFileLoggingWithError(b *testing.B) {
	l := newFileService(b, BackendZerolog).Logger()
	err := fmt.Errorf("test error")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Error("Error occurred", err, fields.F("operation", "benchmark"), fields.F("retry", i))
			i++
		}
	})
}

func BenchmarkContextLoggerCreation(b *testing.B) {
	l := newFileService(b, BackendZerolog).Logger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reqLogger := l.WithFields(
			fields.F("request_id", fmt.Sprintf("req-%d", i)),
			fields.F("user_id", "user-123"))
		reqLogger.Info("Request started", fields.F("action", "start"))
	}
}

func BenchmarkHighConcurrency(b *testing.B) {
	l := newFileService(b, BackendZerolog).Logger()

	b.ResetTimer()
	b.SetParallelism(100)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Info("High concurrency test", fields.F("goroutine_id", i), fields.F("data", "benchmark"))
			i++
		}
	})
}
