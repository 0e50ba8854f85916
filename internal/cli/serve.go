package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/observability"
	"github.com/matzehuels/graphloom/pkg/profile"
	"github.com/matzehuels/graphloom/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	timeout time.Duration
	maxBody int64
	store   storeOpts
	runner  runnerOpts
}

// serveCommand creates the serve command that exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    server.DefaultAddr,
		timeout: server.DefaultRequestTimeout,
		maxBody: server.DefaultMaxBodyBytes,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the build pipeline over HTTP",
		Long: `Serve starts the HTTP API:

  GET  /healthz                         build info
  GET  /v1/options?q=                   option registry
  GET  /v1/settings/sample              sample settings
  POST /v1/canvas                       build (and optionally lay out) a canvas
  POST /v1/preview                      Graphviz preview
  GET  /v1/profiles[/{id}[/{version}]]  profile bundles
  POST /v1/profiles                     store a profile bundle

Profile endpoints need --profile-store or --mongo-uri.`,
		Example: `  graphloom serve --addr :9000 --profile-store ./profiles
  graphloom serve --redis-url redis://localhost:6379/0 --mongo-uri mongodb://localhost:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	opts.store.register(cmd)
	opts.runner.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	opts.runner.layout = true
	runner, err := c.newRunner(ctx, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	var store profile.Store
	if opts.store.configured() {
		if store, err = openStore(ctx, opts.store); err != nil {
			return err
		}
		defer store.Close()
	}

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetServerHooks(hooks)
	defer observability.Reset()

	srv := server.New(server.Config{
		Addr:           opts.addr,
		Runner:         runner,
		Profiles:       store,
		Logger:         c.Logger,
		MaxBodyBytes:   opts.maxBody,
		RequestTimeout: opts.timeout,
	})
	return srv.ListenAndServe(ctx)
}
