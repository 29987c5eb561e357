// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
)

// HealthProbe checks the backend dependencies every interval and publishes
// the result. Status changes are logged.
type HealthProbe struct {
	healthService service.HealthService
	sink          HealthSink
	interval      time.Duration

	last string

	logger *logger.Logger
}

// NewHealthProbe returns a [HealthProbe]. sink may be nil.
func NewHealthProbe(healthService service.HealthService, sink HealthSink, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		healthService: healthService,
		sink:          sink,
		interval:      interval,
		logger:        logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("func", "*HealthProbe.Run").Msg("health probe stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) models.HealthResponse {
	resp := p.healthService.Check(ctx)
	if p.sink != nil {
		p.sink.SetHealth(resp)
	}

	if resp.Status != p.last {
		event := p.logger.Info()
		if resp.Status != models.HealthStatusOK {
			event = p.logger.Warn()
		}
		event.Str("func", "*HealthProbe.probe").Str("from", p.last).Str("to", resp.Status).Msg("health status changed")
		p.last = resp.Status
	}

	return resp
}
