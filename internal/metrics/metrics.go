package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posting_classifications_total",
			Help: "Total number of job postings classified, by result",
		},
		[]string{"result"},
	)

	RecordsAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_appended_total",
			Help: "Total number of rows appended, by destination",
		},
		[]string{"destination"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts, by outcome",
		},
		[]string{"outcome"},
	)

	PageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_errors_total",
			Help: "Total number of failed page submissions, by page and error kind",
		},
		[]string{"page", "kind"},
	)
)
