package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

var (
	// AlertsCreated counts threshold alerts actually created (races and
	// already-posted levels do not count).
	AlertsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "label_ledger",
		Name:      "alerts_created_total",
		Help:      "Number of budget utilization alerts created.",
	})

	// RecoupmentEntriesPosted counts recoupment ledger entries durably appended.
	RecoupmentEntriesPosted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "label_ledger",
		Name:      "recoupment_entries_total",
		Help:      "Number of recoupment ledger entries posted.",
	})

	// ImportRows counts import rows by outcome ("imported" or "rejected").
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "label_ledger",
		Name:      "import_rows_total",
		Help:      "Number of canonical import rows processed, by outcome.",
	}, []string{"outcome"})
)

// Handler exposes the default prometheus registry for the /metrics route.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
