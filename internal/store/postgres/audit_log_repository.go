package postgres

import (
	"context"
	"fmt"

	"github.com/goto/salt/audit"
	auditrepo "github.com/goto/salt/audit/repositories"
	"gorm.io/gorm"

	"github.com/goto/engagement/domain"
)

type auditLogRecord auditrepo.AuditModel

func (auditLogRecord) TableName() string {
	return "audit_logs"
}

func (r *auditLogRecord) toAuditLog() (*audit.Log, error) {
	l := &audit.Log{
		Timestamp: r.Timestamp,
		Action:    r.Action,
		Actor:     r.Actor,
	}
	if r.Data.Valid {
		data := map[string]interface{}{}
		if err := r.Data.Unmarshal(&data); err != nil {
			return nil, fmt.Errorf("parsing data of %q audit log: %w", r.Action, err)
		}
		l.Data = data
	}
	return l, nil
}

// AuditLogRepository reads back the comment and reaction changes recorded
// by salt's audit service.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// List returns matching audit logs, newest first.
func (r *AuditLogRepository) List(ctx context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	db := r.db.WithContext(ctx)
	if filter != nil {
		db = applyAuditLogFilter(db, filter)
	}

	var records []*auditLogRecord
	if err := db.Order("timestamp DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	logs := make([]*audit.Log, 0, len(records))
	for _, record := range records {
		l, err := record.toAuditLog()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func applyAuditLogFilter(db *gorm.DB, filter *domain.ListAuditLogFilter) *gorm.DB {
	if len(filter.Actions) > 0 {
		db = db.Where(`"action" IN ?`, filter.Actions)
	}
	if filter.Actor != "" {
		db = db.Where(`"actor" = ?`, filter.Actor)
	}
	if !filter.Since.IsZero() {
		db = db.Where(`"timestamp" >= ?`, filter.Since)
	}

	jsonFields := []struct{ key, value string }{
		{"comment_id", filter.CommentID},
		{"target_id", filter.TargetID},
		{"target_type", filter.TargetType},
	}
	for _, f := range jsonFields {
		if f.value != "" {
			db = db.Where(`"data" ->> ? = ?`, f.key, f.value)
		}
	}

	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}
	return db
}
