package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bidwell/auctiond/core"
)

var (
	auctionsCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_created_total",
		Help: "Number of auctions created",
	})
	auctionsCompletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_completed_total",
		Help: "Number of auctions ended and settled",
	})
	auctionsCanceledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_canceled_total",
		Help: "Number of auctions cancelled",
	})
	bidsAcceptedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_accepted_total",
		Help: "Number of accepted bids",
	})
	bidsRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_bids_rejected_total",
		Help: "Number of rejected bids by error family",
	}, []string{"family"})
)

func init() {
	prometheus.MustRegister(
		auctionsCreatedCounter,
		auctionsCompletedCounter,
		auctionsCanceledCounter,
		bidsAcceptedCounter,
		bidsRejectedCounter,
	)
}

// errFamily buckets an error into its family label for metrics.
func errFamily(err error) string {
	switch err.(type) {
	case core.ValidationError:
		return "validation"
	case core.ConditionError:
		return "condition"
	case core.AuctionError:
		return "auction"
	default:
		return "internal"
	}
}
