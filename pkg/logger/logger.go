package logger

import "go.uber.org/zap"

// New constructs a sugared production logger tagged with the service name.
// Panics if the logger cannot be built, since nothing useful can run
// without logging.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		panic(err)
	}

	return log.Sugar().With("service", service)
}
