package bootstrap

import "context"

// AuditLog is one operational audit event, distinct from request
// logging: these record lifecycle actions an operator cares about.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
