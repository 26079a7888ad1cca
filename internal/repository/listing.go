package repository

import (
	"encoding/json"
	"errors"

	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/olivere/elastic/v7"
)

var (
	ErrListingNotFound = errors.New("listing not found")
)

type ListingRepository interface {
	GetListing(contract string, tokenId uint64) (*entity.Listing, error)
	GetListingsForContract(contract string, size int, from int) ([]entity.Listing, error)
	GetListingsForSeller(seller string, size int, from int) ([]entity.Listing, error)
}

type listingRepository struct {
	elastic elastic_search.Index
}

func NewListingRepository(elastic elastic_search.Index) ListingRepository {
	return listingRepository{elastic}
}

func (r listingRepository) GetListing(contract string, tokenId uint64) (*entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Size(1))

	return r.findOne(results, err)
}

func (r listingRepository) GetListingsForContract(contract string, size int, from int) ([]entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Sort("tokenId", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r listingRepository) GetListingsForSeller(seller string, size int, from int) ([]entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("seller.keyword", seller),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Sort("tokenId", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r listingRepository) findOne(results *elastic.SearchResult, err error) (*entity.Listing, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrListingNotFound
	}

	var listing entity.Listing
	hit := results.Hits.Hits[0]
	err = json.Unmarshal(hit.Source, &listing)

	return &listing, err
}

func (r listingRepository) findMany(results *elastic.SearchResult, err error) ([]entity.Listing, error) {
	listings := make([]entity.Listing, 0)

	if err != nil {
		return listings, err
	}

	for _, hit := range results.Hits.Hits {
		var listing entity.Listing
		if err := json.Unmarshal(hit.Source, &listing); err == nil {
			listings = append(listings, listing)
		}
	}

	return listings, nil
}
