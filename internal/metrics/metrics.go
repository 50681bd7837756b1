package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymcoin_purchases_total",
		Help: "Total number of completed coin purchases",
	})

	RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymcoin_redemptions_total",
		Help: "Total number of redemption attempts by result",
	}, []string{"result"})

	PayoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymcoin_payouts_total",
		Help: "Total number of simulated gym payouts",
	})
)
