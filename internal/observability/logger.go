package observability

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogOptions selects the logger level and encoding.
type LogOptions struct {
	// Level is a zap level name: debug, info, warn or error. Debug enables
	// V(1) messages.
	Level string
	// Format is FormatConsole or FormatJSON.
	Format string
	// Output defaults to stderr so log lines never mix with command output.
	Output io.Writer
}

// NewLogger builds a zap backed logr.Logger. The returned sync function
// flushes buffered entries and should be deferred by the caller.
func NewLogger(opts LogOptions) (logr.Logger, func(), error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return logr.Discard(), func() {}, fmt.Errorf("%w: %q", ErrUnknownLogLevel, opts.Level)
		}
		level = l
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return logr.Discard(), func() {}, fmt.Errorf("%w: %q", ErrUnknownLogFormat, opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	zl := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(out), level))
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
