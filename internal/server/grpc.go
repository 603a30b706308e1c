// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	myGRPC "github.com/MKhiriev/go-book-catalog/internal/handler/grpc"
	"github.com/MKhiriev/go-book-catalog/internal/logger"

	"google.golang.org/grpc"
)

// healthInterval is how often the gRPC health status is refreshed.
const healthInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:   handler,
		address:   cfg.GRPCAddress,
		server:    server,
		stopWatch: func() {},
		logger:    logger,
	}
}

// listen opens the listener and starts refreshing the health status.
func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = listener

	ctx, cancel := context.WithCancel(context.Background())
	g.stopWatch = cancel
	go g.handler.WatchHealth(ctx, healthInterval)

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.server.GracefulStop()
}
