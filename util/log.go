package util

import (
	"crypto/rand"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Severities for audit log messages
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// LogContext decorates log messages with application and session information
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext with a lazily created session ID
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "s2prep"
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// PsuUUID makes a pseudo-UUID from random bytes
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}

func logEntry(ctx LogContext) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"app":     ctx.AppName(),
		"session": ctx.SessionID(),
	})
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logEntry(ctx).Info(message)
}

// LogWarn logs a condition that was tolerated; processing continues
func LogWarn(ctx LogContext, message string) {
	logEntry(ctx).Warn(message)
}

// LogAlert logs a message that needs operator attention
func LogAlert(ctx LogContext, message string) {
	logEntry(ctx).Error(message)
}

// LogSimpleErr logs a message with its underlying error and returns the
// wrapped error for the caller to propagate
func LogSimpleErr(ctx LogContext, message string, err error) error {
	wrapped := fmt.Errorf("%s: %v", message, err)
	logEntry(ctx).Error(wrapped.Error())
	return wrapped
}

// LogAuditInput is the set of attributes for one audit log record
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity string
}

// LogAudit logs an audit record of who did what to what
func LogAudit(ctx LogContext, input LogAuditInput) {
	entry := logEntry(ctx).WithFields(logrus.Fields{
		"actor":  input.Actor,
		"action": input.Action,
		"actee":  input.Actee,
	})
	switch input.Severity {
	case WARN:
		entry.Warn(input.Message)
	case ERROR:
		entry.Error(input.Message)
	default:
		entry.Info(input.Message)
	}
}
