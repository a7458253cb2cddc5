package openpush

import (
	"github.com/sirupsen/logrus"
)

// loggerHelper provides standardized logging fields for the coordinator.
type loggerHelper struct {
	fields logrus.Fields
}

// newLogger creates a logger helper scoped to a function.
func newLogger(function string) *loggerHelper {
	return &loggerHelper{
		fields: logrus.Fields{
			"function": function,
			"package":  "openpush",
		},
	}
}

// WithField adds a custom field to the logger
func (l *loggerHelper) WithField(key string, value interface{}) *loggerHelper {
	l.fields[key] = value
	return l
}

// WithProvider adds the provider name field.
func (l *loggerHelper) WithProvider(name string) *loggerHelper {
	return l.WithField("provider", name)
}

// WithError adds error information to the logger
func (l *loggerHelper) WithError(err error) *loggerHelper {
	if err != nil {
		l.fields["error"] = err.Error()
	}
	return l
}

// Debug logs a debug message
func (l *loggerHelper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

// Info logs an info message
func (l *loggerHelper) Info(message string) {
	logrus.WithFields(l.fields).Info(message)
}

// Warn logs a warning message
func (l *loggerHelper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}

// Error logs an error message
func (l *loggerHelper) Error(message string) {
	logrus.WithFields(l.fields).Error(message)
}
