package observability

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ObservePing times a database ping and counts failures by class.
func (p *Prom) ObservePing(driver string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		p.DbErrorsTotal.WithLabelValues(driver, classifyDBErr(err)).Inc()
	}
	p.DbPingDuration.WithLabelValues(driver, status).Observe(time.Since(start).Seconds())
	return err
}

func classifyDBErr(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return "timeout"
	}

	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "28P01", "28000":
			return "auth_failed"
		case "3D000":
			return "unknown_database"
		case "57P03":
			return "cannot_connect_now"
		default:
			return "pg_" + pgErr.Code
		}
	}

	if mongo.IsNetworkError(err) {
		return "connection"
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return "mongo_" + cmdErr.Name
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "connect"):
		return "connection"
	default:
		return "unknown"
	}
}
