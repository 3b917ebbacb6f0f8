package bootstrap

import "context"

// AuditLog is a who/what/why record for administrative actions and lifecycle
// events.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
