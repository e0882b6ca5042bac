// Package service builds a ready-to-use logger.Logger from configuration,
// with safe lifecycle management and file rotation.
//
// Key features
//   - One config for every bridged backend: zerolog (default), zap, logrus
//     or slog
//   - File rotation via lumberjack and configurable console formatting
//   - Config loading from YAML or JSON and validation before use
//   - Optional error history rendering (see chainmapper)
//
// Typical usage
//
//	cfg, err := service.LoadConfig("logging.yaml")
//	if err != nil { panic(err) }
//	svc := &service.Service{WorkingDir: wd, Config: cfg}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	lgr := svc.Logger()
//	lgr.Info("ready", fields.F("port", 8080))
package service
