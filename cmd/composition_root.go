package cmd

import (
	"log/slog"
	"time"

	httpadapter "dinebot/internal/adapters/in/http"
	"dinebot/internal/adapters/out/inmemory"
	"dinebot/internal/adapters/out/postgres"
	"dinebot/internal/core/application/usecases/commands"
	"dinebot/internal/core/application/usecases/queries"
	"dinebot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *inmemory.CartStore
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  inmemory.NewCartStore(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	return commands.NewAddItemsCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateRemoveItemsCommandHandler() commands.RemoveItemsCommandHandler {
	return commands.NewRemoveItemsCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(c.cartStore, f, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWebhookServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddItemsCommandHandler(),
		c.CreateRemoveItemsCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(cartIdleFor time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.cartStore, cartIdleFor, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
