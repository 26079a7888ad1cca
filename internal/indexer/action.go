package indexer

import (
	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"go.uber.org/zap"
)

// ActionIndexer writes marketplace actions to the journal index and keeps the
// listing snapshot index in step with them.
type ActionIndexer interface {
	IndexAction(action entity.MarketplaceAction) error
}

type actionIndexer struct {
	elastic elastic_search.Index
}

func NewActionIndexer(elastic elastic_search.Index) ActionIndexer {
	return actionIndexer{elastic}
}

func (i actionIndexer) IndexAction(action entity.MarketplaceAction) error {
	zap.L().With(
		zap.String("contract", action.Contract),
		zap.Uint64("tokenId", action.TokenId),
		zap.String("action", string(action.Action)),
	).Info("ActionIndexer: Index action")

	i.elastic.AddIndexRequest(elastic_search.ActionIndex.Get(), action, elastic_search.ActionCreate)

	switch action.Action {
	case entity.ListingAction:
		listing := entity.Listing{Contract: action.Contract, TokenId: action.TokenId, Price: action.Amount, Seller: action.Seller}
		i.elastic.AddIndexRequest(elastic_search.ListingIndex.Get(), listing, elastic_search.ListingCreate)
	case entity.PriceUpdateAction:
		listing := entity.Listing{Contract: action.Contract, TokenId: action.TokenId, Price: action.Amount, Seller: action.Seller}
		i.elastic.AddUpdateRequest(elastic_search.ListingIndex.Get(), listing, elastic_search.ListingPriceUpdate)
	case entity.SaleAction, entity.DelistingAction:
		listing := entity.Listing{Contract: action.Contract, TokenId: action.TokenId}
		i.elastic.AddDeleteRequest(elastic_search.ListingIndex.Get(), listing, elastic_search.ListingRemove)
	}

	return nil
}
