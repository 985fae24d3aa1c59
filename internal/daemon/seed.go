package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/setting"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed the site title setting if the settings table is empty.

	count, err := setting.Count(db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count settings")
		return
	}

	if count == 0 {
		title := cfg.Title
		if title == "" {
			title = "starfield"
		}

		if err := setting.Set(db, "site_title", title); err != nil {
			log.Error().Err(err).Msg("failed to seed site title")
		}
	}
}
