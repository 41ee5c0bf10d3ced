package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех таблиц агенды.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&BlockedDate{},
		&BlockedPeriod{},
		&Holiday{},
		&AgendaConfig{},
		&ImportHistory{},
		&Subscription{},
	)
}
