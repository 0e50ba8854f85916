package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/buildinfo"
	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/elkjs"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/pipeline"
	"github.com/matzehuels/graphloom/pkg/profile"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphloom"

	// defaultLayoutTimeout bounds a single elkjs run.
	defaultLayoutTimeout = 2 * time.Minute
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (documents, tables, trees).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "graphloom turns graph descriptions into ELK JSON",
		Long:         `graphloom canonicalizes a terse graph description (nodes, nested subgraphs and node:port edges) into an ELK JSON document with every default resolved, and can lay it out with elkjs or preview it with Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.optionsCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.profileCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	registerCompletions(root)
	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts are the flags shared by commands that run the pipeline.
type runnerOpts struct {
	noCache   bool
	redisURL  string
	elkjsMode string
	nodeCmd   string
	layout    bool
}

func (o *runnerOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the layout and preview cache")
	cmd.Flags().StringVar(&o.redisURL, "redis-url", "", "share the cache through Redis (redis://host:port/db)")
	cmd.Flags().StringVar(&o.elkjsMode, "elkjs-mode", elkjs.ModeNode, "elkjs mode: node, npm or npx")
	cmd.Flags().StringVar(&o.nodeCmd, "node-cmd", "node", "node executable used for elkjs")
}

// newRunner creates a pipeline runner for CLI use. The layouter is only
// configured when a layout was requested so that a bad --elkjs-mode does
// not break plain builds.
func (c *CLI) newRunner(ctx context.Context, o runnerOpts) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, o)
	if err != nil {
		return nil, err
	}
	var layouter pipeline.Layouter
	if o.layout {
		if err := elkjs.CheckMode(o.elkjsMode); err != nil {
			cc.Close()
			return nil, err
		}
		layouter = elkjs.NewRunner(elkjs.Options{
			Mode:     o.elkjsMode,
			NodeCmd:  o.nodeCmd,
			CacheDir: cache.DefaultDir(),
			Timeout:  defaultLayoutTimeout,
			Logger:   c.Logger,
		})
	}
	return pipeline.NewRunner(cc, nil, c.Logger, layouter), nil
}

func newCache(ctx context.Context, o runnerOpts) (cache.Cache, error) {
	switch {
	case o.noCache:
		return cache.NewNullCache(), nil
	case o.redisURL != "":
		return cache.NewRedisCache(ctx, cache.RedisOptions{URL: o.redisURL})
	}
	c, err := cache.NewFileCache(cache.DefaultDir())
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return c, nil
}

// =============================================================================
// Profile Stores
// =============================================================================

// storeOpts select a profile store: a directory, or MongoDB when a URI is set.
type storeOpts struct {
	dir      string
	mongoURI string
}

func (o *storeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dir, "profile-store", "", "directory holding profile bundles")
	cmd.Flags().StringVar(&o.mongoURI, "mongo-uri", "", "MongoDB URI holding profile bundles")
}

func (o storeOpts) configured() bool {
	return o.dir != "" || o.mongoURI != ""
}

func openStore(ctx context.Context, o storeOpts) (profile.Store, error) {
	switch {
	case o.mongoURI != "":
		return profile.NewMongoStore(ctx, profile.MongoOptions{URI: o.mongoURI})
	case o.dir != "":
		return profile.NewFileStore(o.dir)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "no profile store: pass --profile-store or --mongo-uri")
}
