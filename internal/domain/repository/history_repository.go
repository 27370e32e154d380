package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
)

// HistoryRepository defines the interface for the member history journal.
// The journal is append-only: entries are never updated or deleted.
type HistoryRepository interface {
	Append(ctx context.Context, entry *entity.HistoryEntry) error
	// ListByMember returns the member's entries ordered by event date descending.
	ListByMember(ctx context.Context, memberID string) ([]entity.HistoryEntry, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
}
