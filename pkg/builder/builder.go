package builder

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// KeyEdgeType records an edge's literal type tag in its properties.
const KeyEdgeType = "graphloom.edgeType"

// Option configures a [Builder].
type Option func(*Builder)

// WithParallel builds sibling subgraphs concurrently.
func WithParallel(on bool) Option {
	return func(b *Builder) { b.parallel = on }
}

// WithIDGenerator replaces the source of generated edge ids. The default
// derives edge_<8 hex> from a name-based UUID over the scope path, the
// edge's position and its raw endpoints, so equal input yields equal ids.
// fn must be safe for concurrent use when combined with [WithParallel].
func WithIDGenerator(fn func() string) Option {
	return func(b *Builder) { b.newID = fn }
}

// Builder builds canvases against one resolved set of settings.
type Builder struct {
	res      *settings.Resolver
	parallel bool
	newID    func() string
}

// New returns a Builder for res. A nil res uses the sample settings.
func New(res *settings.Resolver, opts ...Option) *Builder {
	if res == nil {
		res = mustResolve(settings.Sample())
	}
	b := &Builder{res: res}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves s and builds g. A nil s uses [settings.Sample].
func Build(g *graph.Graph, s *settings.Settings, opts ...Option) (*canvas.Canvas, error) {
	res, err := settings.Resolve(s)
	if err != nil {
		return nil, err
	}
	return New(res, opts...).Build(g)
}

// Build turns g into a validated canvas. Any failure aborts the whole
// build; no partial canvas is returned.
func (b *Builder) Build(g *graph.Graph) (*canvas.Canvas, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is nil")
	}
	children, edges, err := b.buildScope(canvas.RootID, g.Nodes, g.Edges)
	if err != nil {
		return nil, err
	}
	c := &canvas.Canvas{
		ID:            canvas.RootID,
		LayoutOptions: b.res.LayoutOptions(),
		Children:      children,
		Edges:         edges,
	}
	if err := canvas.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func mustResolve(s *settings.Settings) *settings.Resolver {
	res, err := settings.Resolve(s)
	if err != nil {
		panic("builder: resolve sample settings: " + err.Error())
	}
	return res
}

// edgeID returns the id basis for an edge with no id, label or name.
func (b *Builder) edgeID(scope string, i int, e *graph.EdgeSpec) string {
	if b.newID != nil {
		return b.newID()
	}
	name := fmt.Sprintf("%s\x00%d\x00%s\x00%s", scope, i, e.From, e.To)
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
	return "edge_" + hex.EncodeToString(u[:4])
}
