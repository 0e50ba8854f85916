package server

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphloom/pkg/buildinfo"
	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/pipeline"
	"github.com/matzehuels/graphloom/pkg/profile"
	"github.com/matzehuels/graphloom/pkg/props"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// buildRequest is the body of /v1/canvas and /v1/preview.
type buildRequest struct {
	Graph          any
	Settings       map[string]any
	Profile        map[string]any
	ProfileID      string
	ProfileVersion int
	Theme          map[string]any
	Layout         bool
	NoAutoCreate   bool
	Parallel       bool
	Format         string
	Detailed       bool
}

type profileRef struct {
	ID       string `json:"id"`
	Version  int    `json:"version"`
	Checksum string `json:"checksum"`
}

type canvasResponse struct {
	Document   any          `json:"document"`
	CanvasHash string       `json:"canvasHash"`
	Stats      canvas.Stats `json:"stats"`
	LaidOut    bool         `json:"laidOut"`
	Cached     bool         `json:"cached"`
	Profile    *profileRef  `json:"profile,omitempty"`
}

var previewTypes = map[string]string{
	pipeline.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	entries := props.Search(r.URL.Query().Get("q"))
	if entries == nil {
		entries = []props.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": entries})
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	m, err := settings.Sample().ToMap()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleCanvas(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBuild(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	g, opts, err := s.prepare(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Layout = req.Layout

	res, err := s.cfg.Runner.Execute(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := canvasResponse{
		Document:   res.Document(),
		CanvasHash: res.CanvasHash,
		Stats:      res.Stats.Stats,
		LaidOut:    res.Layout != nil,
		Cached:     res.CacheInfo.LayoutHit,
	}
	if p := res.Profile; p != nil {
		resp.Profile = &profileRef{ID: p.ProfileID, Version: p.ProfileVersion, Checksum: p.Checksum}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBuild(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	g, opts, err := s.prepare(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Preview = req.Format
	if opts.Preview == "" {
		opts.Preview = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(opts.Preview); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%v", err))
		return
	}
	opts.Detailed = req.Detailed

	res, err := s.cfg.Runner.Execute(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", previewTypes[opts.Preview])
	w.Header().Set("X-Canvas-Hash", res.CanvasHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Preview)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Profiles == nil {
		s.writeError(w, r, errNoStore())
		return
	}
	list, err := s.cfg.Profiles.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []profile.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": list})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Profiles == nil {
		s.writeError(w, r, errNoStore())
		return
	}
	version := 0
	if v := chi.URLParam(r, "version"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidProfile, "profile version must be an integer, got %q", v))
			return
		}
		version = n
	}
	b, err := s.cfg.Profiles.Get(r.Context(), chi.URLParam(r, "id"), version)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Profiles == nil {
		s.writeError(w, r, errNoStore())
		return
	}
	m, err := s.decodeBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := profile.FromMap(m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cfg.Profiles.Put(r.Context(), b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile.Summary{
		ProfileID:      b.ProfileID,
		ProfileVersion: b.ProfileVersion,
		Checksum:       b.Checksum,
	})
}

// decodeBody reads a size-limited JSON object.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	v, err := io.ReadJSON(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", s.cfg.MaxBodyBytes)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "request body is not valid JSON")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request body must be a JSON object")
	}
	return m, nil
}

func (s *Server) decodeBuild(w http.ResponseWriter, r *http.Request) (*buildRequest, error) {
	m, err := s.decodeBody(w, r)
	if err != nil {
		return nil, err
	}
	req := &buildRequest{Graph: m["graph"]}
	if req.Graph == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph: field required")
	}

	objects := []struct {
		key string
		dst *map[string]any
	}{
		{"settings", &req.Settings},
		{"profile", &req.Profile},
		{"theme", &req.Theme},
	}
	for _, o := range objects {
		if v, ok := m[o.key]; ok && v != nil {
			obj, ok := v.(map[string]any)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s: expected an object", o.key)
			}
			*o.dst = obj
		}
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{"layout", &req.Layout},
		{"noAutoCreate", &req.NoAutoCreate},
		{"parallel", &req.Parallel},
		{"detailed", &req.Detailed},
	}
	for _, f := range flags {
		if v, ok := m[f.key]; ok && v != nil {
			b, ok := v.(bool)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s: expected a boolean", f.key)
			}
			*f.dst = b
		}
	}

	if v, ok := m["profileId"].(string); ok {
		req.ProfileID = v
	}
	if v, ok := m["profileVersion"]; ok && v != nil {
		n, err := strconv.Atoi(fmt.Sprint(v))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "profileVersion: expected an integer")
		}
		req.ProfileVersion = n
	}
	if v, ok := m["format"].(string); ok {
		req.Format = v
	}

	set := 0
	for _, present := range []bool{req.Settings != nil, req.Profile != nil, req.ProfileID != ""} {
		if present {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "settings, profile and profileId are mutually exclusive")
	}
	return req, nil
}

// prepare validates the graph and resolves the settings source.
func (s *Server) prepare(r *http.Request, req *buildRequest) (*graph.Graph, pipeline.Options, error) {
	opts := pipeline.Options{
		Source:       "request " + requestIDOf(r),
		Theme:        req.Theme,
		NoAutoCreate: req.NoAutoCreate,
		Parallel:     req.Parallel,
		Profile:      req.Profile,
	}
	g, err := graph.Load(req.Graph)
	if err != nil {
		return nil, opts, err
	}

	switch {
	case req.Settings != nil:
		st, err := settings.FromMap(req.Settings)
		if err != nil {
			return nil, opts, err
		}
		opts.Settings = st
	case req.ProfileID != "":
		if s.cfg.Profiles == nil {
			return nil, opts, errNoStore()
		}
		b, err := s.cfg.Profiles.Get(r.Context(), req.ProfileID, req.ProfileVersion)
		if err != nil {
			return nil, opts, err
		}
		opts.Profile = b.Map()
	}
	return g, opts, nil
}

func requestIDOf(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

func errNoStore() error {
	return errors.New(errors.ErrCodeUnsupported, "no profile store configured")
}
