package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopDishes(ctx context.Context, memberID string, limit int) ([]domainRepo.TopDishResult, error) {
	var results []domainRepo.TopDishResult

	err := dbFromContext(ctx, r.db).Raw(`
		SELECT
			d.dish_id as dish_id,
			d.name as dish_name,
			COALESCE(SUM(li.quantity), 0) as quantity
		FROM order_line_items li
		JOIN dishes d ON d.dish_id = li.dish_id
		JOIN orders o ON o.order_id = li.order_id
		WHERE o.member_id = ?
		GROUP BY d.dish_id, d.name
		ORDER BY quantity DESC
		LIMIT ?
	`, memberID, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetPaymentCounts(ctx context.Context, memberID string) (*domainRepo.PaymentCountsResult, error) {
	db := dbFromContext(ctx, r.db)
	result := &domainRepo.PaymentCountsResult{}

	base := func() *gorm.DB {
		return db.Model(&entity.Payment{}).Where("member_id = ?", memberID)
	}

	if err := base().Count(&result.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", enum.PaymentStatusPaid).Count(&result.Full).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", enum.PaymentStatusPartial).Count(&result.Partial).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *analyticsRepository) GetBillTotals(ctx context.Context, memberID string) (*domainRepo.BillTotalsResult, error) {
	var result domainRepo.BillTotalsResult

	err := dbFromContext(ctx, r.db).Raw(`
		SELECT
			COUNT(*) as count,
			COALESCE(AVG(b.total), 0) as average,
			COALESCE(MAX(b.total), 0) as highest,
			COALESCE(MIN(b.total), 0) as lowest
		FROM bills b
		JOIN orders o ON o.bill_id = b.bill_id
		WHERE o.member_id = ?
	`, memberID).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analyticsRepository) GetOrderCount(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&entity.Order{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count, err
}
