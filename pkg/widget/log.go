package widget

import (
	"io"

	"charm.land/log/v2"
)

// logger records widget lifecycle transitions at debug level. The
// default discards everything; embedders that want lifecycle traces
// install their own via SetLogger.
var logger = log.New(io.Discard)

// SetLogger replaces the package logger used for lifecycle debug
// logging. Passing nil restores the discarding default.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.New(io.Discard)
		return
	}
	logger = l
}
