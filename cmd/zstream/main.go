package main

import (
	"flag"
	"io"
	"os"

	"github.com/iamNilotpal/zstream/config"
	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/services/codec"
	"github.com/iamNilotpal/zstream/internal/core/services/stream"
	"github.com/iamNilotpal/zstream/pkg/errors"
	"github.com/iamNilotpal/zstream/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	logger := logger.New("zstream")
	defer logger.Sync()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Infow("config error", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	c, err := newCodec(cfg)
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	logger.Infow("compressing stdin",
		"format", c.Format().String(),
		"level", c.Level(),
		"windowBits", c.WindowBits(),
	)

	w := stream.NewWriter(os.Stdout, c, &stream.Options{BufferSize: cfg.BufferSize})

	written, err := io.Copy(w, os.Stdin)
	if err != nil {
		w.Close()
		logger.Infow("compress error", "error", err)
		os.Exit(1)
	}

	if err := w.Close(); err != nil {
		logger.Infow("error closing stream", "error", err)
		os.Exit(1)
	}

	logger.Infow("done", "bytesRead", written)
}

func newCodec(cfg *config.Config) (*codec.Codec, error) {
	opts := &domain.CodecOptions{Level: cfg.Level, WindowBits: cfg.WindowBits}

	switch cfg.Format {
	case config.FormatZlib:
		return codec.NewZlib(opts)
	case config.FormatDeflate:
		return codec.NewDeflate(opts)
	default:
		return codec.NewGzip(opts)
	}
}
