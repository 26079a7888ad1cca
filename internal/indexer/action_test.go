package indexer

import (
	"testing"

	"github.com/DuckMart/marketplace-engine/internal/elastic_search"
	"github.com/DuckMart/marketplace-engine/internal/entity"
)

type capturedRequest struct {
	index   string
	entity  entity.Entity
	reqType elastic_search.RequestType
	action  elastic_search.RequestAction
}

type fakeIndex struct {
	elastic_search.Index
	requests []capturedRequest
}

func (f *fakeIndex) AddIndexRequest(index string, entity entity.Entity, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, capturedRequest{index, entity, elastic_search.IndexRequest, reqAction})
}

func (f *fakeIndex) AddUpdateRequest(index string, entity entity.Entity, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, capturedRequest{index, entity, elastic_search.UpdateRequest, reqAction})
}

func (f *fakeIndex) AddDeleteRequest(index string, entity entity.Entity, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, capturedRequest{index, entity, elastic_search.DeleteRequest, reqAction})
}

func TestIndexListingActionCreatesSnapshot(t *testing.T) {
	elastic := &fakeIndex{}
	i := NewActionIndexer(elastic)

	err := i.IndexAction(entity.MarketplaceAction{
		ID:       "a1",
		Contract: "0xducks",
		TokenId:  1,
		Action:   entity.ListingAction,
		Seller:   "0xseller",
		Amount:   100,
	})
	if err != nil {
		t.Fatalf("index action failed: %v", err)
	}

	if len(elastic.requests) != 2 {
		t.Fatalf("got %d requests, want action journal plus listing snapshot", len(elastic.requests))
	}

	if elastic.requests[0].action != elastic_search.ActionCreate {
		t.Errorf("first request = %s, want %s", elastic.requests[0].action, elastic_search.ActionCreate)
	}

	snapshot := elastic.requests[1]
	if snapshot.action != elastic_search.ListingCreate || snapshot.reqType != elastic_search.IndexRequest {
		t.Errorf("got %+v, want a ListingCreate index request", snapshot)
	}

	listing := snapshot.entity.(entity.Listing)
	if listing.Price != 100 || listing.Seller != "0xseller" {
		t.Errorf("snapshot listing = %+v", listing)
	}
}

func TestIndexSaleActionRemovesSnapshot(t *testing.T) {
	for _, actionType := range []entity.ActionType{entity.SaleAction, entity.DelistingAction} {
		elastic := &fakeIndex{}
		i := NewActionIndexer(elastic)

		err := i.IndexAction(entity.MarketplaceAction{
			ID:       "a2",
			Contract: "0xducks",
			TokenId:  1,
			Action:   actionType,
		})
		if err != nil {
			t.Fatalf("index action failed: %v", err)
		}

		if len(elastic.requests) != 2 || elastic.requests[1].reqType != elastic_search.DeleteRequest {
			t.Errorf("%s: got %+v, want a snapshot delete", actionType, elastic.requests)
		}
	}
}

func TestIndexPriceUpdateActionUpdatesSnapshot(t *testing.T) {
	elastic := &fakeIndex{}
	i := NewActionIndexer(elastic)

	err := i.IndexAction(entity.MarketplaceAction{
		ID:       "a3",
		Contract: "0xducks",
		TokenId:  1,
		Action:   entity.PriceUpdateAction,
		Seller:   "0xseller",
		Amount:   250,
	})
	if err != nil {
		t.Fatalf("index action failed: %v", err)
	}

	if len(elastic.requests) != 2 || elastic.requests[1].reqType != elastic_search.UpdateRequest {
		t.Fatalf("got %+v, want a snapshot update", elastic.requests)
	}

	if elastic.requests[1].entity.(entity.Listing).Price != 250 {
		t.Errorf("snapshot price = %d, want 250", elastic.requests[1].entity.(entity.Listing).Price)
	}
}

func TestIndexWithdrawalActionOnlyJournals(t *testing.T) {
	elastic := &fakeIndex{}
	i := NewActionIndexer(elastic)

	err := i.IndexAction(entity.MarketplaceAction{
		ID:     "a4",
		Action: entity.WithdrawalAction,
		Seller: "0xseller",
		Amount: 90,
	})
	if err != nil {
		t.Fatalf("index action failed: %v", err)
	}

	if len(elastic.requests) != 1 {
		t.Errorf("got %d requests, want the journal entry only", len(elastic.requests))
	}
}
