package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/acousticlab/soundfield.view/internal/coeffio"
	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/geom"
	"github.com/acousticlab/soundfield.view/internal/render"
	"github.com/acousticlab/soundfield.view/internal/spharm"
)

// Server renders views of one coefficient set. Requests share the
// read-only matrices; every view is evaluated from scratch.
type Server struct {
	coeffs  *mat.CDense
	filters *mat.CDense
	mux     *http.ServeMux
}

// NewServer validates the set and wires the routes.
func NewServer(set *coeffio.Set) (*Server, error) {
	coeffs, filters, err := set.Matrices()
	if err != nil {
		return nil, err
	}

	s := &Server{coeffs: coeffs, filters: filters, mux: http.NewServeMux()}
	s.mux.HandleFunc("/view", s.handleView)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleView evaluates and renders one view.
// Query params: style, colorize, offset, scale, order, kr.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	opts := field.DefaultOptions()
	visual := render.DefaultVisualOptions()

	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		visual.Style = v
	}
	var err error
	if visual.Colorize, err = boolParam(q.Get("colorize"), visual.Colorize); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid colorize: "+err.Error())
		return
	}
	if visual.Offset, err = floatParam(q.Get("offset"), visual.Offset); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid offset: "+err.Error())
		return
	}
	if visual.Scale, err = floatParam(q.Get("scale"), visual.Scale); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid scale: "+err.Error())
		return
	}
	if opts.Order, err = intParam(q.Get("order"), opts.Order); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid order: "+err.Error())
		return
	}
	if opts.KRIndex, err = intParam(q.Get("kr"), opts.KRIndex); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid kr: "+err.Error())
		return
	}

	// Reject bad styles before paying for the field evaluation.
	if _, err := geom.ParseStyle(visual.Style); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := field.MakeMTX(spharm.PWD{}, s.coeffs, s.filters, opts)
	if err != nil {
		// Parameter-shaped failures: bad order/kr for this set.
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Render into a buffer first so failures never leave a half-written
	// response.
	var buf bytes.Buffer
	title := fmt.Sprintf("soundfield %s view (order %d, kr %d)", visual.Style, opts.Order, opts.KRIndex)
	canvas := render.NewEChartsCanvas(&buf, title)

	view, err := render.Visualize3D(canvas, f, visual)
	if err != nil {
		switch {
		case errors.Is(err, field.ErrDegenerateField), errors.Is(err, geom.ErrFlatNotImplemented):
			s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-View-ID", view.ID)
	_, _ = w.Write(buf.Bytes())
	log.Printf("Rendered view %s (style=%s order=%d kr=%d)", view.ID, visual.Style, opts.Order, opts.KRIndex)
}

func (s *Server) writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func boolParam(v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func floatParam(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}
