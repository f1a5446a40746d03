package main

import (
	"github.com/spf13/cobra"

	"github.com/lumaui/luma/internal/config"
	"github.com/lumaui/luma/pkg/server"
)

func serveCmd() *cobra.Command {
	var addr string
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Luma server",
		Long: `Start the Luma server using luma.json from the working directory.

Sessions connect at /ws. Health and metrics endpoints are mounted at
/healthz and /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Address = addr
			}

			printBanner()
			info("serving %s on %s", cfg.Name, cfg.Address)

			srv := server.New(server.FromConfig(cfg))
			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides luma.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory containing luma.json")

	return cmd
}
