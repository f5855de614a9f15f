package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/newjenk/gridsystem/pkg/buildinfo"
	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
	gio "github.com/newjenk/gridsystem/pkg/io"
	"github.com/newjenk/gridsystem/pkg/observability"
	"github.com/newjenk/gridsystem/pkg/pipeline"
)

// breakpointInfo is one row of GET /v1/breakpoints.
type breakpointInfo struct {
	Name     string `json:"name"`
	Infix    string `json:"infix"`
	Label    string `json:"label"`
	MinWidth int    `json:"minWidth"`
	MaxWidth *int   `json:"maxWidth"`
	Help     string `json:"help"`
}

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Current()})
}

func (s *Server) handleBreakpoints(w http.ResponseWriter, r *http.Request) {
	out := make([]breakpointInfo, 0, grid.NumBreakpoints)
	for _, bp := range grid.Breakpoints() {
		rg := grid.RangeOf(bp)
		info := breakpointInfo{
			Name:     bp.String(),
			Infix:    bp.Infix(),
			Label:    rg.Label,
			MinWidth: rg.MinWidth,
			Help:     rg.Help(),
		}
		if !rg.Unbounded() {
			max := rg.MaxWidth
			info.MaxWidth = &max
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "", false)
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "block")
	if _, err := grid.KindByName(name); err != nil {
		writeError(w, r, apperr.Wrap(apperr.ErrCodeNotFound, err, "unknown block %q", name))
		return
	}
	s.render(w, r, name, true)
}

// render decodes the body, renders it and writes the result in the
// requested format. single answers with the lone block instead of a
// document when the format is json.
func (s *Server) render(w http.ResponseWriter, r *http.Request, block string, single bool) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	format, err := bodyFormat(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		writeError(w, r, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	doc, err := gio.Read(bytes.NewReader(body), format, block)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if single && len(doc.Blocks) != 1 {
		writeError(w, r, apperr.New(apperr.ErrCodeInvalidInput, "expected one block, got %d", len(doc.Blocks)))
		return
	}

	res, err := s.runner.RenderAll(r.Context(), doc, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set(CacheHeader, cacheStatus(res.Stats))

	if opts.Format == pipeline.FormatJSON {
		if single {
			writeJSON(w, http.StatusOK, res.Blocks[0])
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	out, err := pipeline.Serialize(res, opts.Format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ctype := "text/plain; charset=utf-8"
	if opts.Format == pipeline.FormatHTML {
		ctype = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// options reads the query parameters over the server defaults. The API
// answers json unless asked otherwise.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Profile: s.profile,
		Format:  pipeline.FormatJSON,
		Logger:  s.logger,
	}
	if v := q.Get("profile"); v != "" {
		p, err := grid.ParseProfile(v)
		if err != nil {
			return opts, apperr.Wrap(apperr.ErrCodeInvalidProfile, err, "invalid profile %q", v)
		}
		opts.Profile = p
	}
	if v := q.Get("format"); v != "" {
		if err := pipeline.ValidateFormat(v); err != nil {
			return opts, err
		}
		opts.Format = v
	}
	if v := q.Get("strict"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apperr.New(apperr.ErrCodeInvalidInput, "invalid strict value %q", v)
		}
		opts.Strict = strict
	}
	return opts, nil
}

// bodyFormat maps Content-Type to a document decoder. A missing type is
// treated as JSON.
func bodyFormat(r *http.Request) (gio.Format, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return gio.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeUnsupported, err, "bad content type %q", ct)
	}
	switch mt {
	case "application/json", "text/json":
		return gio.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return gio.FormatYAML, nil
	case "application/toml", "text/toml":
		return gio.FormatTOML, nil
	}
	return "", apperr.New(apperr.ErrCodeUnsupported, "unsupported content type %q", mt)
}

func notFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch apperr.GetCode(err) {
	case apperr.ErrCodeInvalidAttribute, apperr.ErrCodeUnknownAttribute:
		return http.StatusUnprocessableEntity
	case apperr.ErrCodeNotFound, apperr.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	if apperr.IsInputError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	}
	body := errorBody{
		Error:     apperr.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	if code := apperr.GetCode(err); code != "" {
		body.Code = string(code)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// cacheStatus reports how much of a render came from the cache: HIT, MISS
// or PARTIAL. The body never depends on it.
func cacheStatus(st pipeline.Stats) string {
	switch {
	case st.Blocks > 0 && st.CacheHits == st.Blocks:
		return "HIT"
	case st.CacheHits > 0:
		return "PARTIAL"
	}
	return "MISS"
}
