package config

import (
	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets the logrus level from LOG_LEVEL and switches to JSON
// output outside local development.
func (c *Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.APP.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", c.APP.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.APP.IsLocal() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
}
