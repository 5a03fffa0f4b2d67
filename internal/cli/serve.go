package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/pycross/pycross/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	ConfigPath string
	Addr       string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translation HTTP server",
		Long: `Run an HTTP server exposing the translation pipeline.

POST /convert with a JSON body {"code": "...", "toLang": "c"} returns
{"result": "..."}. GET /healthz reports server health.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions) error {
	cfg := server.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := server.LoadConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	logger := log.New(log.Writer(), "pycross ", log.LstdFlags)
	return server.New(cfg, logger).ListenAndServe()
}
