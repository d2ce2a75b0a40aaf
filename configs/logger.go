package configs

import (
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger configures the shared logger. Level comes from LOG_LEVEL
// (defaults to info), output is JSON for log aggregation.
func InitLogger() {
	Logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(EnvLogLevel())
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// LogWithContext returns an entry scoped to a service and component so
// every line carries where it came from.
func LogWithContext(service, component string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"component": component,
	})
}
