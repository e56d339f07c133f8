package modules

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"passmeter/pkg/probe"
)

type ProbeServer struct {
	Name            string
	Version         string
	ListenAddress   string
	ShutdownTimeout time.Duration
	Readiness       []probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	handler := probe.NewHandler(
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Readiness...,
	)

	httpServer := NewServer(ctx, p.ListenAddress, handler, 0)

	HTTPServer{Name: "probe", ShutdownTimeout: p.ShutdownTimeout}.Run(ctx, g, httpServer)
}
