//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chat-server/services/chat-api/internal/config"
	"chat-server/services/chat-api/internal/domain/chat"
	"chat-server/services/chat-api/internal/domain/conversation"
	"chat-server/services/chat-api/internal/infrastructure/completion"
	"chat-server/services/chat-api/internal/infrastructure/database"
	"chat-server/services/chat-api/internal/infrastructure/database/transaction"
	"chat-server/services/chat-api/internal/infrastructure/logger"
	"chat-server/services/chat-api/internal/infrastructure/repository/conversationrepo"
	"chat-server/services/chat-api/internal/interfaces/httpserver"
)

var repositorySet = wire.NewSet(
	transaction.NewDatabase,
	conversationrepo.NewConversationGormRepository,
	wire.Bind(new(conversation.ConversationRepository), new(*conversationrepo.ConversationGormRepository)),
	conversationrepo.NewMessageGormRepository,
	wire.Bind(new(conversation.MessageRepository), new(*conversationrepo.MessageGormRepository)),
)

var serviceSet = wire.NewSet(
	completion.NewClient,
	wire.Bind(new(chat.CompletionClient), new(*completion.Client)),
	wire.Bind(new(chat.Transactor), new(*transaction.Database)),
	chat.NewService,
	conversation.NewQueryService,
)

// BuildApplication assembles the chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		newLogger,
		newDatabaseConfig,
		newGormDB,
		repositorySet,
		serviceSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
