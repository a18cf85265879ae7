// Package logging builds the logrus loggers used by the host tools
package logging

import (
	"io"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"

	"msphal/core"
)

// New returns a logger writing to out at the given level, tagged with
// prefix
func New(out io.Writer, level logrus.Level, prefix string) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 12
	customFormatter.SpacePadding = 40
	logger.SetFormatter(customFormatter)

	return logger.WithField("prefix", prefix)
}

// RouteCoreDebug sends the GPIO layer's debug messages to log at debug
// level. Message construction in the core is only enabled when the
// logger would print them.
func RouteCoreDebug(log *logrus.Entry) {
	core.SetDebugWriter(func(s string) {
		log.Debug(s)
	})
	core.SetDebugEnabled(log.Logger.IsLevelEnabled(logrus.DebugLevel))
}
