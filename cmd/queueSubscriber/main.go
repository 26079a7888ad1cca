package main

import (
	"encoding/json"

	"github.com/DuckMart/marketplace-engine/internal/config"
	"github.com/DuckMart/marketplace-engine/internal/config/di"
	"github.com/DuckMart/marketplace-engine/internal/dev"
	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/indexer"
	"github.com/DuckMart/marketplace-engine/internal/messenger"
	"github.com/aws/aws-sdk-go/service/sqs"
	"go.uber.org/zap"
)

var (
	messageService messenger.MessageService
	actionIndexer  indexer.ActionIndexer
	elastic        elastic_search.Index
)

func main() {
	config.Init("queueSubscriber")

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	messageService = container.GetMessenger()
	actionIndexer = container.GetActionIndexer()
	elastic = container.GetElastic()

	pollActionPersist()
}

func pollActionPersist() {
	zap.L().Info("Subscribing to action persist")
	messages := make(chan *sqs.Message, 10)
	go messageService.PollMessages(messenger.ActionPersist, messages)

	for message := range messages {
		var action entity.MarketplaceAction
		if err := json.Unmarshal([]byte(*message.Body), &action); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read message")
			continue
		}
		dev.Dump(action)

		if err := actionIndexer.IndexAction(action); err != nil {
			zap.L().With(
				zap.String("contract", action.Contract),
				zap.Uint64("tokenId", action.TokenId),
				zap.Error(err),
			).Error("Action persist failed")
		}

		if err := messageService.DeleteMessage(messenger.ActionPersist, message); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to delete message")
		}

		elastic.Persist()
	}
}
