package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DuckMart/marketplace-engine/internal/marketplace"
	"github.com/DuckMart/marketplace-engine/internal/repository"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	engine      marketplace.Engine
	actionRepo  repository.ActionRepository
	listingRepo repository.ListingRepository
}

func NewServer(engine marketplace.Engine, actionRepo repository.ActionRepository, listingRepo repository.ListingRepository) Server {
	return Server{engine, actionRepo, listingRepo}
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHomepage).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/listings", s.handleList).Methods("POST")
	r.HandleFunc("/listings/{contract}/{tokenId}", s.handleGetListing).Methods("GET")
	r.HandleFunc("/listings/{contract}/{tokenId}", s.handleCancel).Methods("DELETE")
	r.HandleFunc("/listings/{contract}/{tokenId}/price", s.handleUpdatePrice).Methods("PATCH")
	r.HandleFunc("/listings/{contract}/{tokenId}/buy", s.handleBuy).Methods("POST")

	r.HandleFunc("/withdrawals", s.handleWithdraw).Methods("POST")
	r.HandleFunc("/royalties/settle", s.handlePayRoyalties).Methods("POST")
	r.HandleFunc("/proceeds/{address}", s.handleGetProceeds).Methods("GET")

	r.HandleFunc("/contracts/{contract}/listings", s.handleContractListings).Methods("GET")
	r.HandleFunc("/sellers/{seller}/actions", s.handleSellerActions).Methods("GET")
	r.HandleFunc("/tokens/{contract}/{tokenId}/actions", s.handleTokenActions).Methods("GET")
	r.HandleFunc("/tokens/{contract}/{tokenId}/sale", s.handleLatestSale).Methods("GET")
	r.HandleFunc("/tokens/{contract}/{tokenId}/listing", s.handleIndexedListing).Methods("GET")

	r.NotFoundHandler = notFoundHandler()

	return r
}

func (s Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprintf(w, "DuckMart Marketplace Engine")
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

type listRequest struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    uint64 `json:"price"`
	Caller   string `json:"caller"`
}

func (s Server) handleList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.engine.List(req.Contract, req.TokenId, req.Price, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	listing, err := s.engine.GetListing(contract, tokenId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, listing)
}

type cancelRequest struct {
	Caller string `json:"caller"`
}

func (s Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.engine.Cancel(contract, tokenId, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updatePriceRequest struct {
	NewPrice uint64 `json:"newPrice"`
	Caller   string `json:"caller"`
}

func (s Server) handleUpdatePrice(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.engine.UpdatePrice(contract, tokenId, req.NewPrice, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type buyRequest struct {
	PaidAmount uint64 `json:"paidAmount"`
	Buyer      string `json:"buyer"`
}

func (s Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.engine.Buy(contract, tokenId, req.PaidAmount, req.Buyer); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type withdrawRequest struct {
	Caller string `json:"caller"`
}

func (s Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := s.engine.Withdraw(req.Caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, map[string]uint64{"amount": amount})
}

type payRoyaltiesRequest struct {
	Caller string `json:"caller"`
}

func (s Server) handlePayRoyalties(w http.ResponseWriter, r *http.Request) {
	var req payRoyaltiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.engine.PayRoyalties(req.Caller); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleGetProceeds(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	amount, err := s.engine.GetAvailableProceeds(address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, map[string]uint64{"amount": amount})
}

func (s Server) handleContractListings(w http.ResponseWriter, r *http.Request) {
	contract := mux.Vars(r)["contract"]
	size, from := pagination(r)

	listings, err := s.listingRepo.GetListingsForContract(contract, size, from)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Listings not available")
		http.Error(w, "Listings not available", http.StatusInternalServerError)
		return
	}

	writeJson(w, listings)
}

func (s Server) handleTokenActions(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}
	size, _ := pagination(r)

	actions, err := s.actionRepo.GetActionsForToken(contract, tokenId, size)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Actions not available")
		http.Error(w, "Actions not available", http.StatusInternalServerError)
		return
	}

	writeJson(w, actions)
}

func (s Server) handleSellerActions(w http.ResponseWriter, r *http.Request) {
	seller := mux.Vars(r)["seller"]
	size, _ := pagination(r)

	actions, err := s.actionRepo.GetActionsForSeller(seller, size)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Actions not available")
		http.Error(w, "Actions not available", http.StatusInternalServerError)
		return
	}

	writeJson(w, actions)
}

func (s Server) handleLatestSale(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	sale, err := s.actionRepo.GetLatestSale(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrActionNotFound) {
			http.Error(w, "Sale not found", http.StatusNotFound)
			return
		}

		zap.L().With(zap.Error(err)).Warn("Sale not available")
		http.Error(w, "Sale not available", http.StatusInternalServerError)
		return
	}

	writeJson(w, sale)
}

// handleIndexedListing serves the listing snapshot from the index rather than
// the engine, so consumers watching derived state see what the journal built.
func (s Server) handleIndexedListing(w http.ResponseWriter, r *http.Request) {
	contract, tokenId, err := pathParams(r)
	if err != nil {
		http.Error(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	listing, err := s.listingRepo.GetListing(contract, tokenId)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}

		zap.L().With(zap.Error(err)).Warn("Listing not available")
		http.Error(w, "Listing not available", http.StatusInternalServerError)
		return
	}

	writeJson(w, listing)
}

func pathParams(r *http.Request) (string, uint64, error) {
	contract, ok := mux.Vars(r)["contract"]
	if !ok {
		return "", 0, errors.New("invalid parameters")
	}

	tokenIdParam, ok := mux.Vars(r)["tokenId"]
	if !ok {
		return "", 0, errors.New("invalid parameters")
	}

	tokenId, err := strconv.ParseUint(tokenIdParam, 10, 64)

	return contract, tokenId, err
}

func pagination(r *http.Request) (int, int) {
	size := 20
	if value, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && value > 0 {
		size = value
	}

	from := 0
	if value, err := strconv.Atoi(r.URL.Query().Get("from")); err == nil && value > 0 {
		from = value
	}

	return size, from
}

func writeJson(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case marketplace.IsValidation(err):
		status = http.StatusBadRequest
	case marketplace.IsAuthorization(err):
		status = http.StatusForbidden
	case marketplace.IsStateConflict(err), marketplace.IsLedgerBlocked(err):
		status = http.StatusConflict
	case marketplace.IsTransferFailure(err):
		status = http.StatusBadGateway
	case errors.Is(err, marketplace.ErrReentrantCall):
		status = http.StatusTooManyRequests
	}

	http.Error(w, err.Error(), status)
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})
}
