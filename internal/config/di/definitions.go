package di

import (
	"time"

	"github.com/DuckMart/marketplace-engine/internal/api"
	"github.com/DuckMart/marketplace-engine/internal/asset"
	"github.com/DuckMart/marketplace-engine/internal/config"
	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/factory"
	"github.com/DuckMart/marketplace-engine/internal/indexer"
	"github.com/DuckMart/marketplace-engine/internal/marketplace"
	"github.com/DuckMart/marketplace-engine/internal/messenger"
	"github.com/DuckMart/marketplace-engine/internal/repository"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/patrickmn/go-cache"
	"github.com/sarulabs/di/v2"
	"go.uber.org/zap"
)

var Definitions = []di.Def{
	{
		Name: "elastic",
		Build: func(ctn di.Container) (interface{}, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "cache",
		Build: func(ctn di.Container) (interface{}, error) {
			return cache.New(5*time.Minute, 10*time.Minute), nil
		},
	},
	{
		Name: "asset.provider",
		Build: func(ctn di.Container) (interface{}, error) {
			c := config.Get().AssetRpc
			client, err := asset.NewClient(c.Url, c.Timeout, c.Retries, c.Debug)
			if err != nil {
				return nil, err
			}

			return asset.NewProvider(client), nil
		},
	},
	{
		Name: "asset.service",
		Build: func(ctn di.Container) (interface{}, error) {
			return asset.NewAssetService(
				ctn.Get("asset.provider").(*asset.Provider),
				ctn.Get("cache").(*cache.Cache),
				config.Get().AssetRpc.CacheTtl,
			), nil
		},
	},
	{
		Name: "asset.payer",
		Build: func(ctn di.Container) (interface{}, error) {
			return asset.NewPayer(ctn.Get("asset.provider").(*asset.Provider)), nil
		},
	},
	{
		Name: "store",
		Build: func(ctn di.Container) (interface{}, error) {
			return marketplace.NewStore(), nil
		},
	},
	{
		Name: "engine",
		Build: func(ctn di.Container) (interface{}, error) {
			return marketplace.NewEngine(
				ctn.Get("store").(*marketplace.Store),
				ctn.Get("asset.service").(asset.Service),
				ctn.Get("asset.payer").(asset.Payer),
				config.Get().Marketplace.Address,
				config.Get().Marketplace.RoyaltiesEnabled,
			), nil
		},
	},
	{
		Name: "action.factory",
		Build: func(ctn di.Container) (interface{}, error) {
			return factory.NewActionFactory(), nil
		},
	},
	{
		Name: "action.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewActionIndexer(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "action.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewActionRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "listing.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewListingRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			c := config.Get().Aws
			sess, err := session.NewSession(&aws.Config{
				Region:      aws.String(c.Region),
				Credentials: credentials.NewStaticCredentials(c.AccessKey, c.SecretKey, c.Token),
			})
			if err != nil {
				return nil, err
			}

			return messenger.NewMessenger(sqs.New(sess)), nil
		},
	},
	{
		Name: "api",
		Build: func(ctn di.Container) (interface{}, error) {
			return api.NewServer(
				ctn.Get("engine").(marketplace.Engine),
				ctn.Get("action.repo").(repository.ActionRepository),
				ctn.Get("listing.repo").(repository.ListingRepository),
			), nil
		},
	},
}
