package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new member history repository
func NewHistoryRepository(db *gorm.DB) domainRepo.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	return dbFromContext(ctx, r.db).Create(entry).Error
}

func (r *historyRepository) ListByMember(ctx context.Context, memberID string) ([]entity.HistoryEntry, error) {
	var entries []entity.HistoryEntry
	err := dbFromContext(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("event_date DESC, history_id DESC").
		Find(&entries).Error
	return entries, err
}

func (r *historyRepository) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&entity.HistoryEntry{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count, err
}
