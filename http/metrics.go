package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// conversions counts conversion requests by outcome: ok, ignored,
// parse_error or rate_error.
var conversions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bot_conversion_requests_total",
	Help: "Conversion requests by outcome.",
}, []string{"result"})
