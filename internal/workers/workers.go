// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/handler"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the backend workers. The health probe feeds the gRPC
// health handler when one exists and only logs otherwise.
func NewWorkers(services *service.Services, handlers *handler.Handlers, cfg config.Workers, logger *logger.Logger) *Workers {
	var sink HealthSink
	if handlers != nil && handlers.GRPC != nil {
		sink = handlers.GRPC
	}

	return &Workers{workers: []Worker{
		NewHealthProbe(services.HealthService, sink, cfg.HealthInterval, logger),
	}}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
