// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/handler"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
)

// countingWorker records how many times Run was called and blocks until
// ctx is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

type recordingSink struct {
	mu       sync.Mutex
	statuses []string
}

func (s *recordingSink) SetHealth(resp models.HealthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, resp.Status)
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.statuses...)
}

func TestWorkers_Run_StartsAllAndWaits(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return w1.runs.Load() == 1 && w2.runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately without workers
	ws.Run(context.Background())
}

func TestHealthProbe_PublishesEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthService := mock.NewMockHealthService(ctrl)

	var calls atomic.Int32
	healthService.EXPECT().Check(gomock.Any()).DoAndReturn(func(context.Context) models.HealthResponse {
		if calls.Add(1) == 1 {
			return models.HealthResponse{Status: models.HealthStatusOK}
		}
		return models.HealthResponse{Status: models.HealthStatusDegraded}
	}).MinTimes(2)

	sink := &recordingSink{}
	probe := NewHealthProbe(healthService, sink, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(sink.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	statuses := sink.snapshot()
	assert.Equal(t, models.HealthStatusOK, statuses[0])
	assert.Equal(t, models.HealthStatusDegraded, statuses[1])
}

func TestHealthProbe_NilSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthService := mock.NewMockHealthService(ctrl)
	healthService.EXPECT().Check(gomock.Any()).Return(models.HealthResponse{Status: models.HealthStatusError})

	probe := NewHealthProbe(healthService, nil, time.Hour, logger.Nop())
	resp := probe.probe(context.Background())

	assert.Equal(t, models.HealthStatusError, resp.Status)
	assert.Equal(t, models.HealthStatusError, probe.last)
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{HealthService: mock.NewMockHealthService(ctrl)}
	handlers, err := handler.NewHandlers(services, config.Server{HTTPAddress: ":0", GRPCAddress: ":0"}, logger.Nop())
	require.NoError(t, err)

	ws := NewWorkers(services, handlers, config.Workers{HealthInterval: time.Second}, logger.Nop())

	require.Len(t, ws.workers, 1)
	probe, ok := ws.workers[0].(*HealthProbe)
	require.True(t, ok)
	assert.Same(t, handlers.GRPC, probe.sink)
}
