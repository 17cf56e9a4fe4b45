// internal/audit/logger.go
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Logger records who changed what. Entries go to the structured log; they
// are an operational trail, not part of the data model.
type Logger interface {
	EntityCreated(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID)
	EntityUpdated(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID)
	EntityDeleted(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID)
	ReportCommitted(ctx context.Context, userID uuid.UUID, reportID uuid.UUID, primaryOwnerID uuid.UUID)
}

type slogLogger struct {
	log *slog.Logger
}

func NewLogger(log *slog.Logger) Logger {
	return &slogLogger{log: log}
}

func (l *slogLogger) EntityCreated(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID) {
	l.log.InfoContext(ctx, "entity created",
		"user_id", userID,
		"entity_type", entityType,
		"entity_id", entityID,
	)
}

func (l *slogLogger) EntityUpdated(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID) {
	l.log.InfoContext(ctx, "entity updated",
		"user_id", userID,
		"entity_type", entityType,
		"entity_id", entityID,
	)
}

func (l *slogLogger) EntityDeleted(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID) {
	l.log.InfoContext(ctx, "entity deleted",
		"user_id", userID,
		"entity_type", entityType,
		"entity_id", entityID,
	)
}

func (l *slogLogger) ReportCommitted(ctx context.Context, userID uuid.UUID, reportID uuid.UUID, primaryOwnerID uuid.UUID) {
	l.log.InfoContext(ctx, "report committed",
		"user_id", userID,
		"report_id", reportID,
		"primary_owner_id", primaryOwnerID,
	)
}
