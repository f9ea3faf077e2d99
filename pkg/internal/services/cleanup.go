package services

import (
	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type orphanSweep struct {
	model   any
	cond    string
	parents *gorm.DB
}

// DoAutoDatabaseCleanup sweeps rows that lost their parent. The service-level
// deletes already clean up after themselves; this catches what slipped through
// when foreign key enforcement is off.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up entire database...")

	accounts := database.C.Model(&models.Account{}).Select("id")
	posts := database.C.Model(&models.Post{}).Select("id")

	var count int64
	for _, sweep := range []orphanSweep{
		{&models.Post{}, "author_id NOT IN (?)", accounts},
		{&models.Comment{}, "author_id NOT IN (?)", accounts},
		{&models.Comment{}, "post_id NOT IN (?)", posts},
		{&models.Follow{}, "account_id NOT IN (?)", accounts},
		{&models.Follow{}, "author_id NOT IN (?)", accounts},
		{&models.PostView{}, "post_id NOT IN (?)", posts},
	} {
		if tx := database.C.Delete(sweep.model, sweep.cond, sweep.parents); tx.Error == nil {
			count += tx.RowsAffected
		}
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
