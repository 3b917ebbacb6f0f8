package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit events into the process log stream under a
// named "audit" logger. The portal has no external audit sink; the approval
// workflow and server lifecycle both log through this.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Action,
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
