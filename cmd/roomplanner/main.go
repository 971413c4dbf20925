package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"roomplanner/internal/server"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomplanner",
		Short: "Room furniture layout recommendation engine",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates a timestamped logger honoring the verbose flag.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func suggestCmd() *cobra.Command {
	var photoPath string

	cmd := &cobra.Command{
		Use:   "suggest [project-path]",
		Short: "Generate and print furniture layout suggestions for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSuggest(args[0], photoPath)
		},
	}

	cmd.Flags().StringVar(&photoPath, "photo", "", "room photo to analyze for context")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a room spec without generating layouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func renderCmd() *cobra.Command {
	var (
		outPath  string
		optionID int
	)

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Place the best-fitting layout and write an SVG floor plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], outPath, optionID)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "floorplan.svg", "output SVG path")
	cmd.Flags().IntVar(&optionID, "option", 0, "layout option to render (default: first within budget)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for interactive clients",
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(port, newLogger())
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
