package observability

import "errors"

var (
	// ErrUnknownLogLevel is returned for a level name zap does not recognise.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrUnknownLogFormat is returned for a format other than console or json.
	ErrUnknownLogFormat = errors.New("unknown log format")
)
