package handlers

import (
	"github.com/jmoiron/sqlx"

	"sudsshop/internal/ai"
	"sudsshop/internal/config"
	"sudsshop/internal/repos"
	"sudsshop/internal/services"
	"sudsshop/internal/store"
	"sudsshop/internal/telegram"
)

type Deps struct {
	Sessions *store.Sessions

	StoreHandler *StoreHandler
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	AuthHandler  *AuthHandler
	AdminHandler *AdminHandler
	RelayHandler *RelayHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	catalog, err := store.LoadCatalog(repos.NewCatalogRepo(db))
	if err != nil {
		return nil, err
	}
	authSvc, err := services.NewAuthService(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	sessions := store.NewSessions()
	orderSvc := services.NewOrderService(cfg.RelayURL, cfg.TelegramBotUsername, cfg.Production)
	bot := telegram.NewClient(cfg.TelegramBotToken)
	describer := ai.NewDescriber(cfg.GeminiAPIKey, cfg.GeminiModel)

	return &Deps{
		Sessions:     sessions,
		StoreHandler: &StoreHandler{Catalog: catalog},
		CartHandler:  &CartHandler{Catalog: catalog},
		OrderHandler: &OrderHandler{Orders: orderSvc},
		AuthHandler:  &AuthHandler{Auth: authSvc},
		AdminHandler: &AdminHandler{Catalog: catalog, Describe: describer},
		RelayHandler: &RelayHandler{Bot: bot, ChatID: cfg.TelegramChatID},
	}, nil
}
