// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/world"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxBodySize limits POST bodies, which are small JSON objects.
const maxBodySize = 4096

type (
	heightResponse struct {
		X       float32     `json:"x"`
		Height  float32     `json:"height"`
		Slope   world.Angle `json:"slope"`
		Version uint64      `json:"version"`
	}

	statusResponse struct {
		Clients int    `json:"clients"`
		Seed    int64  `json:"seed"`
		Version uint64 `json:"version"`
	}

	// renderedPNG caches the PNG of one terrain version.
	renderedPNG struct {
		version uint64
		buf     []byte
	}
)

// Router returns the HTTP routes of the hub. Every handler reads only the published
// snapshot; mutations are queued to the hub goroutine.
func (h *Hub) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", h.ServeIndex)
	r.Get("/ws", h.ServeSocket)
	r.Get("/terrain.png", h.serveImage)

	r.Route("/terrain", func(r chi.Router) {
		r.Get("/", h.serveTerrain)
		r.Get("/height", h.serveHeight)
		r.Get("/bounds", h.serveBounds)
		r.Get("/camera", h.serveCamera)
		r.Post("/impact", h.postImpact)
		r.Post("/regenerate", h.postRegenerate)
	})

	return r
}

func (h *Hub) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data := h.Published().Data()
	respondJSON(w, http.StatusOK, statusResponse{
		Clients: h.Clients(),
		Seed:    data.Seed,
		Version: data.Version,
	})
}

func (h *Hub) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Info("upgrade error", zap.Error(err))
		return
	}

	if err := h.join(r.Context(), NewSocketClient(h, conn)); err != nil {
		logger.Log.Info("could not register socket", zap.Error(err))
		_ = conn.Close()
	}
}

func (h *Hub) serveTerrain(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Published().JSON())
}

func (h *Hub) serveHeight(w http.ResponseWriter, r *http.Request) {
	x, err := queryFloat(r, "x")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data := h.Published().Data()
	respondJSON(w, http.StatusOK, heightResponse{
		X:       x,
		Height:  data.HeightAt(x),
		Slope:   data.SlopeAt(x),
		Version: data.Version,
	})
}

func (h *Hub) serveBounds(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Published().Data().Bounds)
}

func (h *Hub) serveCamera(w http.ResponseWriter, r *http.Request) {
	aspect := float32(1)
	if r.URL.Query().Has("aspect") {
		var err error
		if aspect, err = queryFloat(r, "aspect"); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	respondJSON(w, http.StatusOK, terrain.FitCamera(h.Published().Data().Bounds, aspect))
}

func (h *Hub) serveImage(w http.ResponseWriter, r *http.Request) {
	published := h.Published()
	version := published.Data().Version

	cached, ok := h.rendered.Load().(renderedPNG)
	if !ok || cached.version != version {
		var buf bytes.Buffer
		if err := png.Encode(&buf, terrain.RenderWidth(published.Data(), snapshotWidth)); err != nil {
			logger.Log.Error("could not encode terrain image", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "could not render terrain")
			return
		}
		cached = renderedPNG{version: version, buf: buf.Bytes()}
		h.rendered.Store(cached)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(cached.buf)
}

func (h *Hub) postImpact(w http.ResponseWriter, r *http.Request) {
	var impact Impact
	if err := decodeBody(r, &impact); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.submit(w, r, impact)
}

func (h *Hub) postRegenerate(w http.ResponseWriter, r *http.Request) {
	var regenerate Regenerate
	if err := decodeBody(r, &regenerate); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.submit(w, r, regenerate)
}

func (h *Hub) submit(w http.ResponseWriter, r *http.Request, in inbound) {
	if err := h.Submit(r.Context(), in); err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// decodeBody decodes a JSON request body into v. An empty body leaves v unchanged.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func queryFloat(r *http.Request, key string) (float32, error) {
	f, err := strconv.ParseFloat(r.URL.Query().Get(key), 32)
	if err != nil {
		return 0, err
	}
	if !world.Finite(float32(f)) {
		return 0, strconv.ErrRange
	}
	return float32(f), nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	buf, err := json.Marshal(data)
	if err != nil {
		logger.Log.Error("error encoding JSON", zap.Error(err))
		status = http.StatusInternalServerError
		buf = []byte(`{"error":"encoding"}`)
	}
	writeJSON(w, status, buf)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, buf []byte) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Log.Debug("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("took", time.Since(start)),
		)
	})
}
