package database

import (
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"gorm.io/gorm"
)

// AutoMaintainRange lists every record type that carries an account reference.
// The migrator walks it, and so does the per-account purge in services.
var AutoMaintainRange = []any{
	&models.Account{},
	&models.Group{},
	&models.Post{},
	&models.Comment{},
	&models.Follow{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.PostView{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
