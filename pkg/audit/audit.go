package audit

import (
	"context"
	"database/sql"
	"fmt"

	saltAudit "github.com/goto/salt/audit"
	auditRepos "github.com/goto/salt/audit/repositories"
	"go.opentelemetry.io/otel/trace"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// NewPostgresLogger records audit logs in the audit_logs table of db,
// creating it when missing.
func NewPostgresLogger(ctx context.Context, db *sql.DB, appName, appVersion string) (AuditLogger, error) {
	repo := auditRepos.NewPostgresRepository(db)
	if err := repo.Init(ctx); err != nil {
		return nil, fmt.Errorf("initializing audit repository: %w", err)
	}

	return saltAudit.New(
		saltAudit.WithRepository(repo),
		saltAudit.WithMetadataExtractor(func(ctx context.Context) map[string]interface{} {
			md := map[string]interface{}{
				"app_name":    appName,
				"app_version": appVersion,
			}
			if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
				md["trace_id"] = spanCtx.TraceID().String()
			}
			return md
		}),
	), nil
}

type noopLogger struct{}

// NewNoop discards every audit log. It backs deployments without a
// database, e.g. the in memory store.
func NewNoop() AuditLogger {
	return noopLogger{}
}

func (noopLogger) Log(context.Context, string, interface{}) error {
	return nil
}
