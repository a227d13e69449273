// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erc777vm/erc777vm/controller"
	"github.com/erc777vm/erc777vm/rpc"
	"github.com/erc777vm/erc777vm/server"
)

var (
	httpAddr        string
	allowedOrigins  []string
	logLevel        string
	shutdownTimeout = 10 * time.Second
)

func init() {
	serveCmd.PersistentFlags().StringVar(
		&httpAddr,
		"http-addr",
		"127.0.0.1:10777",
		"address the API server listens on",
	)
	serveCmd.PersistentFlags().StringSliceVar(
		&allowedOrigins,
		"allowed-origins",
		[]string{"*"},
		"origins allowed by CORS",
	)
	serveCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"info",
		"log verbosity",
	)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the installed token over JSON-RPC",
	RunE: func(*cobra.Command, []string) error {
		level, err := logging.ToLevel(logLevel)
		if err != nil {
			return err
		}
		log := logging.NewLogger(
			"erc777vm",
			logging.NewWrappedCore(
				level,
				os.Stderr,
				logging.Colors.ConsoleEncoder(),
			),
		)

		db, dbRegistry, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		admin, err := getAdmin(db)
		if err != nil {
			return err
		}
		g, err := loadGenesis()
		if err != nil {
			return err
		}
		c, err := controller.New(log, trace.Noop, db, g, admin)
		if err != nil {
			return err
		}

		handler, err := rpc.NewHandler(rpc.NewJSONRPCServer(c))
		if err != nil {
			return err
		}

		listener, err := net.Listen("tcp", httpAddr)
		if err != nil {
			return err
		}
		srv := server.New(log, listener, server.NewDefaultHTTPConfig(), allowedOrigins, shutdownTimeout)
		srv.AddRoute("/rpc", handler)
		srv.AddRoute("/metrics", promhttp.HandlerFor(
			prometheus.Gatherers{c.MetricsRegistry(), dbRegistry},
			promhttp.HandlerOpts{},
		))

		errs := make(chan error, 1)
		go func() {
			errs <- srv.Dispatch()
		}()
		log.Info("serving",
			zap.String("addr", listener.Addr().String()),
			zap.Stringer("admin", admin),
		)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errs:
			return err
		case s := <-sig:
			log.Info("shutting down", zap.Stringer("signal", s))
			if err := srv.Shutdown(); err != nil {
				return err
			}
			if err := <-errs; err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		}
	},
}
