package app

import (
	"github.com/robfig/cron/v3"
	"github.com/techvault/storefront/config"
	"github.com/techvault/storefront/internal/mailer"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// DispatcherProvider provides the order notification dispatcher
type DispatcherProvider interface {
	Dispatcher() *mailer.Dispatcher
}

// AppContext combines all provider interfaces for full application context
// Services should depend on specific providers or this combined interface
type AppContext interface {
	DBProvider
	ConfigProvider
	SchedulerProvider
	DispatcherProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
