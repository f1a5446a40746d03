package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦ ╦╔╦╗╔═╗
  ║  ║ ║║║║╠═╣
  ╩═╝╚═╝╩ ╩╩ ╩
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "luma",
		Short: "Server-driven UI for Go",
		Long: `Luma is a server-driven UI framework for Go.

The element tree lives on the server; a thin client renders it and
streams DOM events back over WebSocket. Features include:

  • Server-owned elements with classes, styles, and props
  • Incremental subtree updates over WebSocket
  • Scoped nesting for declarative tree construction
  • Prometheus metrics and OpenTelemetry tracing built in`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Luma ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
