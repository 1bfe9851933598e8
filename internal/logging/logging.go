// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Setup sets the level and formatter of the standard logrus logger.
func Setup(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return nil
}
