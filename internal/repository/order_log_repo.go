package repository

import (
	"time"

	"gorm.io/gorm"

	"paybridge/internal/models"
)

// OrderLogRepository persists the order audit log.
type OrderLogRepository struct {
	db *gorm.DB
}

func NewOrderLogRepository(db *gorm.DB) *OrderLogRepository {
	return &OrderLogRepository{db: db}
}

// Migrate creates the order_logs table if needed.
func (r *OrderLogRepository) Migrate() error {
	return r.db.AutoMigrate(&models.OrderLog{})
}

// Create records one accepted order.
func (r *OrderLogRepository) Create(log *models.OrderLog) error {
	if log.Time == "" {
		log.Time = time.Now().Format("2006-01-02 15:04:05")
	}
	return r.db.Create(log).Error
}
