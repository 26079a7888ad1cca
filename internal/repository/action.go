package repository

import (
	"encoding/json"
	"errors"

	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/olivere/elastic/v7"
)

var (
	ErrActionNotFound = errors.New("marketplace action not found")
)

type ActionRepository interface {
	GetActionsForToken(contract string, tokenId uint64, size int) ([]entity.MarketplaceAction, error)
	GetActionsForSeller(seller string, size int) ([]entity.MarketplaceAction, error)
	GetLatestSale(contract string, tokenId uint64) (*entity.MarketplaceAction, error)
}

type actionRepository struct {
	elastic elastic_search.Index
}

func NewActionRepository(elastic elastic_search.Index) ActionRepository {
	return actionRepository{elastic}
}

func (r actionRepository) GetActionsForToken(contract string, tokenId uint64, size int) ([]entity.MarketplaceAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ActionIndex.Get()).
		Query(query).
		Sort("timestamp", false).
		Size(size))

	return r.findMany(results, err)
}

func (r actionRepository) GetActionsForSeller(seller string, size int) ([]entity.MarketplaceAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("seller.keyword", seller),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ActionIndex.Get()).
		Query(query).
		Sort("timestamp", false).
		Size(size))

	return r.findMany(results, err)
}

func (r actionRepository) GetLatestSale(contract string, tokenId uint64) (*entity.MarketplaceAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
		elastic.NewTermQuery("action.keyword", string(entity.SaleAction)),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ActionIndex.Get()).
		Query(query).
		Sort("timestamp", false).
		Size(1))

	return r.findOne(results, err)
}

func (r actionRepository) findOne(results *elastic.SearchResult, err error) (*entity.MarketplaceAction, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrActionNotFound
	}

	var action entity.MarketplaceAction
	hit := results.Hits.Hits[0]
	err = json.Unmarshal(hit.Source, &action)

	return &action, err
}

func (r actionRepository) findMany(results *elastic.SearchResult, err error) ([]entity.MarketplaceAction, error) {
	actions := make([]entity.MarketplaceAction, 0)

	if err != nil {
		return actions, err
	}

	for _, hit := range results.Hits.Hits {
		var action entity.MarketplaceAction
		if err := json.Unmarshal(hit.Source, &action); err == nil {
			actions = append(actions, action)
		}
	}

	return actions, nil
}
