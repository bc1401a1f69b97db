package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// auth
	LoginsTotal   *prometheus.CounterVec
	TokensIssued  prometheus.Counter
	TokenVerifies *prometheus.CounterVec

	// DB
	DbPingDuration *prometheus.HistogramVec
	DbErrorsTotal  *prometheus.CounterVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hemolink",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hemolink",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "hemolink",
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hemolink",
				Subsystem: "auth",
				Name:      "logins_total",
				Help:      "Login attempts by result.",
			},
			[]string{"result"}, // result=success|invalid_credentials|error
		),
		TokensIssued: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hemolink",
				Subsystem: "auth",
				Name:      "tokens_issued_total",
				Help:      "Session tokens signed.",
			},
		),
		TokenVerifies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hemolink",
				Subsystem: "auth",
				Name:      "token_verifications_total",
				Help:      "Token verifications by result.",
			},
			[]string{"result"}, // result=valid|invalid|expired
		),
		DbPingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hemolink",
				Subsystem: "db",
				Name:      "ping_duration_seconds",
				Help:      "Readiness ping latency by driver and status.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1},
			},
			[]string{"driver", "status"},
		),
		DbErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hemolink",
				Subsystem: "db",
				Name:      "errors_total",
				Help:      "DB errors by driver and class.",
			},
			[]string{"driver", "class"},
		),
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.InFlight, p.LoginsTotal, p.TokensIssued, p.TokenVerifies, p.DbPingDuration, p.DbErrorsTotal)

	return p
}

func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		// route template is only available after routing; best effort:
		route := ctx.FullPath()

		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()
		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		secs := time.Since(start).Seconds()

		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(secs)
	}
}

func (p *Prom) ObserveLogin(result string) {
	p.LoginsTotal.WithLabelValues(result).Inc()
	if result == "success" {
		p.TokensIssued.Inc()
	}
}

func (p *Prom) ObserveVerify(result string) {
	p.TokenVerifies.WithLabelValues(result).Inc()
}
