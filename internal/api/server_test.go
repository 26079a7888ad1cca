package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/marketplace"
	"github.com/DuckMart/marketplace-engine/internal/repository"
)

type fakeEngine struct {
	listErr     error
	buyErr      error
	cancelErr   error
	priceErr    error
	withdrawErr error
	royaltyErr  error

	listing  entity.Listing
	proceeds uint64
}

func (f *fakeEngine) List(contract string, tokenId uint64, price uint64, caller string) error {
	return f.listErr
}

func (f *fakeEngine) Buy(contract string, tokenId uint64, paidAmount uint64, buyer string) error {
	return f.buyErr
}

func (f *fakeEngine) Cancel(contract string, tokenId uint64, caller string) error {
	return f.cancelErr
}

func (f *fakeEngine) UpdatePrice(contract string, tokenId uint64, newPrice uint64, caller string) error {
	return f.priceErr
}

func (f *fakeEngine) Withdraw(caller string) (uint64, error) {
	if f.withdrawErr != nil {
		return 0, f.withdrawErr
	}

	return f.proceeds, nil
}

func (f *fakeEngine) PayRoyalties(caller string) error {
	return f.royaltyErr
}

func (f *fakeEngine) GetListing(contract string, tokenId uint64) (entity.Listing, error) {
	if !f.listing.Exists() {
		return entity.Listing{}, marketplace.ErrNotListed
	}

	return f.listing, nil
}

func (f *fakeEngine) GetAvailableProceeds(caller string) (uint64, error) {
	return f.proceeds, nil
}

type fakeActionRepo struct {
	actions []entity.MarketplaceAction
}

func (f fakeActionRepo) GetActionsForToken(contract string, tokenId uint64, size int) ([]entity.MarketplaceAction, error) {
	return f.actions, nil
}

func (f fakeActionRepo) GetActionsForSeller(seller string, size int) ([]entity.MarketplaceAction, error) {
	return f.actions, nil
}

func (f fakeActionRepo) GetLatestSale(contract string, tokenId uint64) (*entity.MarketplaceAction, error) {
	if len(f.actions) == 0 {
		return nil, repository.ErrActionNotFound
	}

	return &f.actions[0], nil
}

type fakeListingRepo struct {
	listings []entity.Listing
}

func (f fakeListingRepo) GetListing(contract string, tokenId uint64) (*entity.Listing, error) {
	if len(f.listings) == 0 {
		return nil, repository.ErrListingNotFound
	}

	return &f.listings[0], nil
}

func (f fakeListingRepo) GetListingsForContract(contract string, size int, from int) ([]entity.Listing, error) {
	return f.listings, nil
}

func (f fakeListingRepo) GetListingsForSeller(seller string, size int, from int) ([]entity.Listing, error) {
	return f.listings, nil
}

func newTestServer(engine *fakeEngine) Server {
	return NewServer(engine, fakeActionRepo{}, fakeListingRepo{})
}

func postJson(t *testing.T, server Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	return rec
}

func TestHandleListCreated(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	rec := postJson(t, server, "/listings", listRequest{Contract: "0xducks", TokenId: 1, Price: 100, Caller: "0xseller"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to bad request", marketplace.ErrPriceInvalid, http.StatusBadRequest},
		{"value mismatch maps to bad request", marketplace.ErrValueMismatch, http.StatusBadRequest},
		{"authorization maps to forbidden", marketplace.ErrNotAssetOwner, http.StatusForbidden},
		{"state conflict maps to conflict", marketplace.ErrAlreadyListed, http.StatusConflict},
		{"blocked ledger maps to conflict", marketplace.ErrUnpaidRoyalties, http.StatusConflict},
		{"transfer failure maps to bad gateway", marketplace.ErrTransferFailed, http.StatusBadGateway},
		{"reentrant call maps to too many requests", marketplace.ErrReentrantCall, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&fakeEngine{listErr: tt.err})

			rec := postJson(t, server, "/listings", listRequest{Contract: "0xducks", TokenId: 1, Price: 100, Caller: "0xseller"})

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleGetListing(t *testing.T) {
	listing := entity.Listing{Contract: "0xducks", TokenId: 1, Price: 100, Seller: "0xseller"}
	server := newTestServer(&fakeEngine{listing: listing})

	req := httptest.NewRequest("GET", "/listings/0xducks/1", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got entity.Listing
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got != listing {
		t.Errorf("got %+v, want %+v", got, listing)
	}
}

func TestHandleGetListingNotFound(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	req := httptest.NewRequest("GET", "/listings/0xducks/1", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleGetListingBadTokenId(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	req := httptest.NewRequest("GET", "/listings/0xducks/notanumber", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleWithdraw(t *testing.T) {
	server := newTestServer(&fakeEngine{proceeds: 90})

	rec := postJson(t, server, "/withdrawals", withdrawRequest{Caller: "0xseller"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got map[string]uint64
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got["amount"] != 90 {
		t.Errorf("amount = %d, want 90", got["amount"])
	}
}

func TestHandleWithdrawBlocked(t *testing.T) {
	server := newTestServer(&fakeEngine{withdrawErr: marketplace.ErrUnpaidRoyalties})

	rec := postJson(t, server, "/withdrawals", withdrawRequest{Caller: "0xseller"})

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleGetProceeds(t *testing.T) {
	server := newTestServer(&fakeEngine{proceeds: 42})

	req := httptest.NewRequest("GET", "/proceeds/0xseller", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got map[string]uint64
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got["amount"] != 42 {
		t.Errorf("amount = %d, want 42", got["amount"])
	}
}

func TestHandleSellerActions(t *testing.T) {
	actions := []entity.MarketplaceAction{
		{ID: "a1", Contract: "0xducks", TokenId: 1, Action: entity.SaleAction, Seller: "0xseller", Amount: 100},
	}
	server := NewServer(&fakeEngine{}, fakeActionRepo{actions: actions}, fakeListingRepo{})

	req := httptest.NewRequest("GET", "/sellers/0xseller/actions", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []entity.MarketplaceAction
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("got %+v, want the seller's action", got)
	}
}

func TestHandleLatestSale(t *testing.T) {
	sale := entity.MarketplaceAction{ID: "a2", Contract: "0xducks", TokenId: 1, Action: entity.SaleAction, Amount: 100}
	server := NewServer(&fakeEngine{}, fakeActionRepo{actions: []entity.MarketplaceAction{sale}}, fakeListingRepo{})

	req := httptest.NewRequest("GET", "/tokens/0xducks/1/sale", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got entity.MarketplaceAction
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got.ID != "a2" {
		t.Errorf("got %+v, want the latest sale", got)
	}
}

func TestHandleLatestSaleNotFound(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	req := httptest.NewRequest("GET", "/tokens/0xducks/1/sale", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleIndexedListing(t *testing.T) {
	listing := entity.Listing{Contract: "0xducks", TokenId: 1, Price: 100, Seller: "0xseller"}
	server := NewServer(&fakeEngine{}, fakeActionRepo{}, fakeListingRepo{listings: []entity.Listing{listing}})

	req := httptest.NewRequest("GET", "/tokens/0xducks/1/listing", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got entity.Listing
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got != listing {
		t.Errorf("got %+v, want %+v", got, listing)
	}
}

func TestHandleIndexedListingNotFound(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	req := httptest.NewRequest("GET", "/tokens/0xducks/1/listing", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	server := newTestServer(&fakeEngine{})

	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
