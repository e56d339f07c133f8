package modules

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"passmeter/pkg/metrics"
)

type MetricServer struct {
	ListenAddress   string
	Gatherer        prometheus.Gatherer
	ShutdownTimeout time.Duration
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	httpServer := NewServer(ctx, m.ListenAddress, metrics.NewHandler(m.Gatherer), 0)

	HTTPServer{Name: "metrics", ShutdownTimeout: m.ShutdownTimeout}.Run(ctx, g, httpServer)
}
