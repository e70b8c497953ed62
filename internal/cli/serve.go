package cli

import (
	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/server"
	"github.com/navagraha/jyotish/pkg/cache"
	"github.com/navagraha/jyotish/pkg/chart"
)

// serveCommand creates the serve command: the chart pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		positions string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart API over HTTP",
		Long: `Serve the chart pipeline as an HTTP API.

Endpoints:
  GET  /health
  POST /api/chart
  GET  /api/chart/{id}/aspects?mode=rasi|degree

Configuration comes from JYOTISH_* environment variables (a .env file is
loaded when present); flags override. With --redis, computed charts are
cached in Redis instead of on disk.

Examples:
  jyotish serve -p positions.json
  jyotish serve -p positions.json --addr :9000 --redis localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := loadPositions(positions)
			if err != nil {
				return err
			}

			store, err := serveCache(redisAddr, noCache)
			if err != nil {
				return err
			}

			cfg := server.FromEnv()
			if addr != "" {
				cfg.Addr = addr
			}

			var keyer cache.Keyer
			if cfg.CacheNamespace != "" {
				keyer = cache.NewScopedKeyer(nil, cfg.CacheNamespace+":")
			}

			runner := chart.NewRunner(provider, store, keyer, c.Logger)
			defer runner.Close()

			srv := server.New(cfg, runner, c.Logger)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides JYOTISH_ADDR)")
	cmd.Flags().StringVarP(&positions, "positions", "p", "", "tropical positions file (required)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the chart cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the chart cache")
	_ = cmd.MarkFlagRequired("positions")
	return cmd
}

func serveCache(redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(cache.WithAddr(redisAddr))
	}
	return newCache(false), nil
}
