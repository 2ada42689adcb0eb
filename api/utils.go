package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bidwell/auctiond/core"
)

// HTTPError carries an explicit status code out of a handler.
type HTTPError struct {
	Cause  error
	Status int
}

func (e *HTTPError) Error() string {
	return e.Cause.Error()
}

// NewBadRequest is for malformed input discovered while decoding a request.
func NewBadRequest(cause error) *HTTPError {
	return &HTTPError{Cause: cause, Status: http.StatusBadRequest}
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON encodes obj as the response body.
func WriteJSON(w http.ResponseWriter, obj interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(obj)
}

// WrapHandlerFunc converts an error-returning handler into http.HandlerFunc,
// mapping engine errors onto status codes.
func WrapHandlerFunc(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := f(w, req)
		if err == nil {
			return
		}

		status := statusFor(err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
	}
}

// statusFor maps the engine's error families onto HTTP statuses. Validation
// failures are the client's input being malformed; condition failures are
// legal requests rejected by the auction's current state.
func statusFor(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}

	if errors.Is(err, core.ErrAuctionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, core.ErrNotAuctionOwner) {
		return http.StatusForbidden
	}

	switch err.(type) {
	case core.ValidationError:
		return http.StatusBadRequest
	case core.ConditionError:
		return http.StatusConflict
	case core.AuctionError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
