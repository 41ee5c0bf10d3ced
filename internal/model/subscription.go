package model

import (
	"time"

	"github.com/google/uuid"
)

// subscriptions — статус подписки пишет биллинг, здесь только чтение.
type Subscription struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(32);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (s *Subscription) Premium() bool {
	return s != nil && (s.Status == "active" || s.Status == "trialing")
}
