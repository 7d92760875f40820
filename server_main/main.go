// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/SoftbearStudios/crater/server"
	"github.com/SoftbearStudios/crater/server/cloud/fs"
	"github.com/SoftbearStudios/crater/server/config"
	"github.com/SoftbearStudios/crater/server/logger"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	filesystem, err := fs.New(cfg.Cloud.Region, cfg.Cloud.Bucket)
	if err != nil {
		// Cloud is not required for server to function, just log an error
		logger.Log.Warn("cloud error", zap.Error(err))
		filesystem = fs.Offline{}
	}
	logger.Log.Info("cloud", zap.String("fs", fmt.Sprint(filesystem)))

	hub, err := server.NewHub(cfg, filesystem)
	if err != nil {
		logger.Log.Fatal("could not create hub", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go hub.Run(ctx)

	if cfg.Server.Port < 0 {
		logger.Log.Info("simulation started")
		<-ctx.Done()
		return
	}

	l, err := net.Listen("tcp", fmt.Sprint(":", cfg.Server.Port))
	if err != nil {
		logger.Log.Fatal("listen", zap.Error(err))
	}
	defer l.Close()

	l = netutil.LimitListener(l, cfg.Server.MaxConnections)

	mux := http.NewServeMux()
	mux.Handle("/debug/", http.DefaultServeMux)
	mux.Handle("/", hub.Router())
	srv := &http.Server{Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Log.Info("server started", zap.Int("port", cfg.Server.Port))
	if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal("serve", zap.Error(err))
	}
}
