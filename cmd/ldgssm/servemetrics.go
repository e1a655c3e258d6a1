package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ldgssm/ldgssm/ldglog"
	"github.com/ldgssm/ldgssm/metrics"
)

func newServeMetricsCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Serve an empty Prometheus metrics endpoint (smoke-test the collector wiring)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ldglog.New(ldglog.LevelInfo)
			reg := prometheus.NewRegistry()
			metrics.NewCollector(reg)
			serveMetricsAt(addr, reg, logger)
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9090", "address to listen on")
	return cmd
}

// serveMetricsAt blocks serving reg's metrics at addr/metrics. Run as a
// goroutine by runSort when --metrics_addr is set, or in the foreground by
// the serve-metrics subcommand.
func serveMetricsAt(addr string, reg *prometheus.Registry, logger ldglog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	logger.Info("serving metrics", ldglog.F("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", ldglog.F("error", err))
	}
}
