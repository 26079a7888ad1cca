package di

import (
	"github.com/DuckMart/marketplace-engine/internal/api"
	"github.com/DuckMart/marketplace-engine/internal/asset"
	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/factory"
	"github.com/DuckMart/marketplace-engine/internal/indexer"
	"github.com/DuckMart/marketplace-engine/internal/marketplace"
	"github.com/DuckMart/marketplace-engine/internal/messenger"
	"github.com/DuckMart/marketplace-engine/internal/repository"
	"github.com/sarulabs/di/v2"
)

// Container wraps the di container with typed getters for each service.
type Container struct {
	ctn di.Container
}

func NewContainer() (*Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(Definitions...); err != nil {
		return nil, err
	}

	return &Container{ctn: builder.Build()}, nil
}

func (c *Container) GetElastic() elastic_search.Index {
	return c.ctn.Get("elastic").(elastic_search.Index)
}

func (c *Container) GetAssetService() asset.Service {
	return c.ctn.Get("asset.service").(asset.Service)
}

func (c *Container) GetPayer() asset.Payer {
	return c.ctn.Get("asset.payer").(asset.Payer)
}

func (c *Container) GetStore() *marketplace.Store {
	return c.ctn.Get("store").(*marketplace.Store)
}

func (c *Container) GetEngine() marketplace.Engine {
	return c.ctn.Get("engine").(marketplace.Engine)
}

func (c *Container) GetActionFactory() factory.ActionFactory {
	return c.ctn.Get("action.factory").(factory.ActionFactory)
}

func (c *Container) GetActionIndexer() indexer.ActionIndexer {
	return c.ctn.Get("action.indexer").(indexer.ActionIndexer)
}

func (c *Container) GetActionRepo() repository.ActionRepository {
	return c.ctn.Get("action.repo").(repository.ActionRepository)
}

func (c *Container) GetListingRepo() repository.ListingRepository {
	return c.ctn.Get("listing.repo").(repository.ListingRepository)
}

func (c *Container) GetMessenger() messenger.MessageService {
	return c.ctn.Get("messenger").(messenger.MessageService)
}

func (c *Container) GetApi() api.Server {
	return c.ctn.Get("api").(api.Server)
}
