package service

import (
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
)

// Services bundles every service the HTTP layer talks to together with the
// transactor it opens units of work on for the guard and the ordering
// engine.
type Services struct {
	Transactor store.Transactor

	AuthGuard       AuthGuard
	OrderingService OrderingService
	SessionService  SessionService
	UserService     UserService
	CategoryService CategoryService
	LinkService     LinkService
	PageService     PageService
	RegionService   RegionService
	AppInfoService  AppInfoService
}

func NewServices(transactor store.Transactor, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ordering := NewOrderingService(logger)

	return &Services{
		Transactor:      transactor,
		AuthGuard:       NewAuthGuard(logger),
		OrderingService: ordering,
		SessionService:  NewSessionService(transactor, cfg.App, logger),
		UserService:     NewUserService(transactor, cfg.Security, logger),
		CategoryService: NewCategoryService(transactor, ordering, logger),
		LinkService:     NewLinkService(transactor, logger),
		PageService:     NewPageService(transactor, ordering, logger),
		RegionService:   NewRegionService(transactor, ordering, logger),
		AppInfoService:  appInfo,
	}, nil
}
