package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jsvensson/wordhue/internal/icon"
)

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Welcome to wordhue!")
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	res, err := s.gen.Evaluate(chi.URLParam(r, "text"), queryBool(r, "sort"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleColorDebug(w http.ResponseWriter, r *http.Request) {
	res, err := s.gen.Debug(chi.URLParam(r, "text"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	res, err := s.gen.Palette(chi.URLParam(r, "text"), chi.URLParam(r, "scheme"), queryBool(r, "sort"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// handleIcon renders the bit icon for text, drawing set bits in the text's color.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	text := chi.URLParam(r, "text")
	sort := queryBool(r, "sort")

	opts := s.cfg.IconOptions()
	opts.WordMode = queryBool(r, "word_mode")
	opts.Sort = sort
	if c, err := s.gen.Color(text, sort); err == nil {
		opts.On = &c
	}

	if raw := r.URL.Query().Get("width"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width < 1 || width > icon.MaxSize {
			s.writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf("invalid width %q", raw)})
			return
		}
		opts.Width = width
	}

	img, err := icon.FromString(text, s.gen.Tokenizer, opts)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := icon.Encode(&buf, img); err != nil {
		s.writeError(w, fmt.Errorf("encoding icon: %w", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Debugf("writing icon: %s", err)
	}
}

func queryBool(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
