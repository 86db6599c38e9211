package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"chat-server/services/chat-api/internal/infrastructure/database/entities"
)

// AutoMigrate ensures the conversations and messages tables exist.
// Create-if-missing only: schema evolution for real deployments belongs to
// an external migration tool.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Conversation{}, &entities.Message{}); err != nil {
		return err
	}
	log.Debug().Msg("database schema up to date")
	return nil
}
