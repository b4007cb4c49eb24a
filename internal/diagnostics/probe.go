// Package diagnostics reports backend and database status for GET /test.
// Failures are summarized into the report, never returned.
package diagnostics

import (
	"context"
	"fmt"

	"priyansh-be/internal/logger"
	"priyansh-be/internal/store"

	"go.uber.org/zap"
)

const (
	maxCollections = 10
	maxErrLen      = 50
)

const (
	BackendRunning = "✅ Running"

	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseNotInitialized = "⚠️  Available but not initialized"
	DatabaseAvailable      = "✅ Available"
	DatabaseWorking        = "✅ Connected & Working"

	URLSet    = "✅ Set"
	URLNotSet = "❌ Not Set"

	StatusConnected    = "Connected"
	StatusNotConnected = "Not Connected"
)

type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Prober struct {
	gw     store.Gateway
	urlSet bool
}

func NewProber(gw store.Gateway, databaseURLSet bool) *Prober {
	return &Prober{gw: gw, urlSet: databaseURLSet}
}

// Probe always returns a report.
func (p *Prober) Probe(ctx context.Context) (r Report) {
	r = Report{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.Database = "❌ Error: " + truncate(fmt.Sprint(rec))
			logger.FromCtx(ctx).Error("diagnostics probe panicked", zap.Any("panic", rec))
		}
	}()

	if p.gw == nil || !p.gw.Available() {
		r.Database = DatabaseNotInitialized
		return r
	}

	url := URLNotSet
	if p.urlSet {
		url = URLSet
	}
	name := p.gw.Name()

	r.Database = DatabaseAvailable
	r.DatabaseURL = &url
	r.DatabaseName = &name
	r.ConnectionStatus = StatusConnected

	names, err := p.gw.ListCollectionNames(ctx)
	if err != nil {
		r.Database = "⚠️  Connected but Error: " + truncate(err.Error())
		logger.FromCtx(ctx).Warn("diagnostics: list collections failed", zap.Error(err))
		return r
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	r.Collections = names
	r.Database = DatabaseWorking
	return r
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxErrLen {
		return s
	}
	return string(runes[:maxErrLen])
}
