package daemon

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DuckMart/marketplace-engine/internal/config"
	"github.com/DuckMart/marketplace-engine/internal/config/di"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/event"
	"github.com/DuckMart/marketplace-engine/internal/messenger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var container *di.Container

// Execute boots the marketplace daemon: mappings, event listeners, health
// endpoint and finally the public API. Blocks until the API server exits.
func Execute() {
	initialize()

	container.GetElastic().InstallMappings()

	registerActionListeners()

	go health()

	zap.L().With(
		zap.String("port", config.Get().ApiPort),
		zap.String("address", config.Get().Marketplace.Address),
	).Info("Marketplace Started")

	if err := http.ListenAndServe(":"+config.Get().ApiPort, container.GetApi().Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start API server")
	}
}

func initialize() {
	config.Init("marketd")

	var err error
	container, err = di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}
}

// registerActionListeners bridges engine events onto the action persist
// queue. Each listener drains in order, so the journal preserves the order
// operations completed in.
func registerActionListeners() {
	actionFactory := container.GetActionFactory()

	event.AddEventListener(event.ItemListedEvent, func(msg interface{}) {
		publishAction(actionFactory.CreateListingAction(msg.(event.ItemListed)))
	})
	event.AddEventListener(event.ItemBoughtEvent, func(msg interface{}) {
		publishAction(actionFactory.CreateSaleAction(msg.(event.ItemBought)))
	})
	event.AddEventListener(event.ListingCancelledEvent, func(msg interface{}) {
		publishAction(actionFactory.CreateDelistingAction(msg.(event.ListingCancelled)))
	})
	event.AddEventListener(event.PriceUpdatedEvent, func(msg interface{}) {
		publishAction(actionFactory.CreatePriceUpdateAction(msg.(event.PriceUpdated)))
	})
	event.AddEventListener(event.FundsWithdrawnEvent, func(msg interface{}) {
		publishAction(actionFactory.CreateWithdrawalAction(msg.(event.FundsWithdrawn)))
	})
	event.AddEventListener(event.RoyaltyPaidEvent, func(msg interface{}) {
		publishAction(actionFactory.CreateRoyaltyPaymentAction(msg.(event.RoyaltyPaid)))
	})
}

func publishAction(action entity.MarketplaceAction) {
	body, err := json.Marshal(action)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to marshal action")
		return
	}

	if err := container.GetMessenger().SendMessage(messenger.ActionPersist, body); err != nil {
		zap.L().With(zap.Error(err), zap.String("action", string(action.Action))).Error("Failed to publish action")
	}
}

func health() {
	if err := http.ListenAndServe(":"+config.Get().HealthPort, healthRouter()); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to start health server")
	}
}

func healthRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "OK")
	}).Methods("GET")

	return r
}
