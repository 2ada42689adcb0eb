package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidwell/auctiond/core"
	"github.com/bidwell/auctiond/engine"
)

// Auctions exposes the lifecycle manager over HTTP.
type Auctions struct {
	manager *engine.Manager
}

func NewAuctions(manager *engine.Manager) *Auctions {
	return &Auctions{manager: manager}
}

func (a *Auctions) handleCreateAuction(w http.ResponseWriter, req *http.Request) error {
	var body CreateAuctionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return NewBadRequest(fmt.Errorf("failed to decode request: %w", err))
	}

	conditions, err := body.Conditions()
	if err != nil {
		return NewBadRequest(err)
	}

	meta := core.ItemMetadata{Title: body.Title, Description: body.Description}

	id, err := a.manager.CreateAuction(body.Owner, body.Asset, meta, conditions)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusCreated)
	return WriteJSON(w, CreateAuctionResponse{AuctionID: id})
}

func (a *Auctions) handleGetAuction(w http.ResponseWriter, req *http.Request) error {
	id, err := auctionID(req)
	if err != nil {
		return err
	}

	auction, found, err := a.manager.GetAuction(id)
	if err != nil {
		return err
	}
	if !found {
		return core.ErrAuctionNotFound
	}
	return WriteJSON(w, auction)
}

func (a *Auctions) handleGetPrice(w http.ResponseWriter, req *http.Request) error {
	id, err := auctionID(req)
	if err != nil {
		return err
	}

	price, err := a.manager.GetCurrentPrice(id)
	if err != nil {
		return err
	}
	return WriteJSON(w, PriceResponse{AuctionID: id, Price: price})
}

func (a *Auctions) handleMakeBid(w http.ResponseWriter, req *http.Request) error {
	id, err := auctionID(req)
	if err != nil {
		return err
	}

	var body BidRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return NewBadRequest(fmt.Errorf("failed to decode request: %w", err))
	}

	if err := a.manager.MakeBid(id, body.Bidder, body.Amount); err != nil {
		return err
	}
	return WriteJSON(w, StatusResponse{AuctionID: id, Status: "bid accepted"})
}

func (a *Auctions) handleCancelAuction(w http.ResponseWriter, req *http.Request) error {
	id, err := auctionID(req)
	if err != nil {
		return err
	}

	var body CallerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return NewBadRequest(fmt.Errorf("failed to decode request: %w", err))
	}

	if err := a.manager.CancelAuction(id, body.Caller); err != nil {
		return err
	}
	return WriteJSON(w, StatusResponse{AuctionID: id, Status: core.StatusCancelled.String()})
}

func (a *Auctions) handleEndAuction(w http.ResponseWriter, req *http.Request) error {
	id, err := auctionID(req)
	if err != nil {
		return err
	}

	var body CallerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return NewBadRequest(fmt.Errorf("failed to decode request: %w", err))
	}

	if err := a.manager.EndAuction(id, body.Caller); err != nil {
		return err
	}
	return WriteJSON(w, StatusResponse{AuctionID: id, Status: core.StatusCompleted.String()})
}

func (a *Auctions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("").Methods(http.MethodPost).HandlerFunc(WrapHandlerFunc(a.handleCreateAuction))
	sub.Path("/{id}").Methods(http.MethodGet).HandlerFunc(WrapHandlerFunc(a.handleGetAuction))
	sub.Path("/{id}/price").Methods(http.MethodGet).HandlerFunc(WrapHandlerFunc(a.handleGetPrice))
	sub.Path("/{id}/bids").Methods(http.MethodPost).HandlerFunc(WrapHandlerFunc(a.handleMakeBid))
	sub.Path("/{id}/cancel").Methods(http.MethodPost).HandlerFunc(WrapHandlerFunc(a.handleCancelAuction))
	sub.Path("/{id}/end").Methods(http.MethodPost).HandlerFunc(WrapHandlerFunc(a.handleEndAuction))
}

func auctionID(req *http.Request) (uint32, error) {
	raw := mux.Vars(req)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, NewBadRequest(fmt.Errorf("invalid auction id %q", raw))
	}
	return uint32(id), nil
}
