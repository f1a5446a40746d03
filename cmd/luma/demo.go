package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumaui/luma/pkg/server"
	"github.com/lumaui/luma/pkg/ui"
)

func demoCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo app",
		Long: `Run a small built-in app that exercises the element tree:
a counter, a visibility toggle, and styled controls. Connect a
WebSocket client to /ws to drive it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner()
			info("demo app on %s", addr)

			cfg := server.DefaultServerConfig()
			cfg.Address = addr

			srv := server.New(cfg)
			srv.SetRoot(demoRoot)
			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "Listen address")

	return cmd
}

// demoRoot builds the demo tree: a card with a counter button, a label,
// and a toggle that hides the label.
func demoRoot(c *ui.Client) {
	card := c.NewElement("q-card")
	card.Classes("demo-card", "", "")
	card.Style("max-width: 24rem; margin: 2rem auto", "", "")

	card.With(func() {
		label := c.NewElement("q-label")
		label.SetText("count: 0")

		count := 0
		counter := c.NewElement("q-btn")
		counter.Classes("primary", "", "")
		counter.Props(`label="Count" dense`, "")
		counter.On("click", func(ui.Event) {
			count++
			label.SetText(fmt.Sprintf("count: %d", count))
		}, "clientX", "clientY")

		visible := true
		toggle := c.NewElement("q-btn")
		toggle.Props(`label="Toggle" outline`, "")
		toggle.On("click", func(ui.Event) {
			visible = !visible
			label.OnVisibilityChange(visible)
		})
	})
}
