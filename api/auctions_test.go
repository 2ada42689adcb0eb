package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"

	"github.com/bidwell/auctiond/engine"
	"github.com/bidwell/auctiond/store"
)

type stubSource struct {
	now int64
	seq uint32
}

func (s *stubSource) Now() int64       { return s.now }
func (s *stubSource) Sequence() uint32 { return s.seq }

type apiFixture struct {
	server *httptest.Server
	source *stubSource
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	source := &stubSource{now: 1000, seq: 1}
	manager := engine.NewManager(engine.ManagerConfig{
		Store:         store.NewMemStore(),
		Ledger:        source,
		Auth:          engine.TrustAllAuthenticator{},
		Transfer:      engine.NewMemoryLedger(),
		EscrowAccount: "escrow",
	})

	server := httptest.NewServer(New(manager, "*"))
	t.Cleanup(server.Close)

	return &apiFixture{server: server, source: source}
}

func (f *apiFixture) post(t *testing.T, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(f.server.URL+path, "application/json", bytes.NewReader(data))
	assert.NoError(t, err)
	return resp, readBody(t, resp)
}

func (f *apiFixture) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(f.server.URL + path)
	assert.NoError(t, err)
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	assert.NoError(t, err)
	return buf.Bytes()
}

func validCreateRequest() CreateAuctionRequest {
	return CreateAuctionRequest{
		Owner:         "alice",
		Asset:         "token",
		Title:         "vintage synth",
		Description:   "working condition",
		Strategy:      "regular",
		EndTime:       2000,
		StartingPrice: decimal.RequireFromString("100"),
	}
}

func (f *apiFixture) createAuction(t *testing.T, req CreateAuctionRequest) uint32 {
	t.Helper()
	resp, body := f.post(t, "/auctions", req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created CreateAuctionResponse
	assert.NoError(t, json.Unmarshal(body, &created))
	return created.AuctionID
}

func TestCreateAuction(t *testing.T) {
	f := newAPIFixture(t)

	id := f.createAuction(t, validCreateRequest())
	check.Equal(t, uint32(1), id)

	resp, body := f.get(t, fmt.Sprintf("/auctions/%d", id))
	check.Equal(t, http.StatusOK, resp.StatusCode)

	var auction map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &auction))
	check.Equal(t, "alice", auction["owner"])
}

func TestCreateAuction_BadInput(t *testing.T) {
	f := newAPIFixture(t)

	req := validCreateRequest()
	req.Strategy = "vickrey"
	resp, _ := f.post(t, "/auctions", req)
	check.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = validCreateRequest()
	req.Title = ""
	resp, _ = f.post(t, "/auctions", req)
	check.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = validCreateRequest()
	req.EndTime = 10
	resp, _ = f.post(t, "/auctions", req)
	check.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAuction_NotFound(t *testing.T) {
	f := newAPIFixture(t)

	resp, _ := f.get(t, "/auctions/99")
	check.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = f.get(t, "/auctions/notanumber")
	check.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMakeBid(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createAuction(t, validCreateRequest())

	resp, _ := f.post(t, fmt.Sprintf("/auctions/%d/bids", id),
		BidRequest{Bidder: "bob", Amount: decimal.RequireFromString("150")})
	check.Equal(t, http.StatusOK, resp.StatusCode)

	// Equal to the standing bid: rejected by the price rule.
	resp, body := f.post(t, fmt.Sprintf("/auctions/%d/bids", id),
		BidRequest{Bidder: "carol", Amount: decimal.RequireFromString("150")})
	check.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp map[string]string
	assert.NoError(t, json.Unmarshal(body, &errResp))
	check.NotEqual(t, "", errResp["error"])
}

func TestMakeBid_AfterDeadline(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createAuction(t, validCreateRequest())

	f.source.now = 3000
	resp, _ := f.post(t, fmt.Sprintf("/auctions/%d/bids", id),
		BidRequest{Bidder: "bob", Amount: decimal.RequireFromString("150")})
	check.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCancelAuction(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createAuction(t, validCreateRequest())

	resp, _ := f.post(t, fmt.Sprintf("/auctions/%d/cancel", id), CallerRequest{Caller: "mallory"})
	check.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := f.post(t, fmt.Sprintf("/auctions/%d/cancel", id), CallerRequest{Caller: "alice"})
	check.Equal(t, http.StatusOK, resp.StatusCode)

	var status StatusResponse
	assert.NoError(t, json.Unmarshal(body, &status))
	check.Equal(t, "cancelled", status.Status)
}

func TestEndAuction(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createAuction(t, validCreateRequest())

	resp, _ := f.post(t, fmt.Sprintf("/auctions/%d/end", id), CallerRequest{Caller: "alice"})
	check.Equal(t, http.StatusConflict, resp.StatusCode)

	f.source.now = 2000
	resp, body := f.post(t, fmt.Sprintf("/auctions/%d/end", id), CallerRequest{Caller: "alice"})
	check.Equal(t, http.StatusOK, resp.StatusCode)

	var status StatusResponse
	assert.NoError(t, json.Unmarshal(body, &status))
	check.Equal(t, "completed", status.Status)
}

func TestGetPrice_Dutch(t *testing.T) {
	f := newAPIFixture(t)

	req := validCreateRequest()
	req.Strategy = "dutch"
	floor := decimal.RequireFromString("40")
	req.FloorPrice = &floor
	req.EndTime = 1600
	id := f.createAuction(t, req)

	f.source.now = 1300
	resp, body := f.get(t, fmt.Sprintf("/auctions/%d/price", id))
	check.Equal(t, http.StatusOK, resp.StatusCode)

	var price PriceResponse
	assert.NoError(t, json.Unmarshal(body, &price))
	check.True(t, price.Price.Equal(decimal.RequireFromString("70")))
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)

	resp, _ := f.get(t, "/healthz")
	check.Equal(t, http.StatusOK, resp.StatusCode)
}
