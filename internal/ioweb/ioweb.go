// Package ioweb serves the cleaning report and the dashboard over HTTP.
// JSON endpoints live under /api, the time-series reveal is streamed over
// a websocket and Prometheus metrics are exposed at /metrics.
package ioweb

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Server keeps precomputed views and serves them. Nothing is recomputed
// per request.
type Server struct {
	addr     string
	delay    time.Duration
	cleaning CleaningView
	dash     *dashboard.Dashboard
	metrics  *metrics
	validate *validator.Validate
	upgrader websocket.Upgrader
	router   chi.Router
}

// New creates a server for the views of one run.
func New(
	cfg *config.Config,
	raw *table.Table,
	res *dashboard.Cleaning,
	d *dashboard.Dashboard,
) *Server {
	s := &Server{
		addr:     net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		delay:    time.Duration(cfg.Dashboard.RevealDelayMs) * time.Millisecond,
		cleaning: NewCleaningView(raw, res, cfg.Clean.PreviewRows),
		dash:     d,
		metrics:  newMetrics(),
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.middleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/health", s.health)
		r.Get("/cleaning", s.getCleaning)
		r.Get("/timeseries", s.getTimeSeries)
		r.Get("/citizens", s.getCitizens)
		r.Get("/geosex", s.getGeoSex)
		r.Get("/reference", s.getReference)
	})
	r.Get("/ws/reveal", s.reveal)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

// Run listens until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ServerError(s.addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ServerError(s.addr, err)
	}
	slog.Info("HTTP server stopped", "addr", s.addr)
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{Status: "ok", Rows: s.cleaning.Rows})
}

func (s *Server) getCleaning(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.cleaning)
}

func (s *Server) getTimeSeries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dash.TimeSeries)
}

type citizensResponse struct {
	Points    []dashboard.CitizenPoint `json:"points"`
	Tooltips  []string                 `json:"tooltips"`
	CenterLat *float64                 `json:"center_lat"`
	CenterLon *float64                 `json:"center_lon"`
}

// getCitizens returns plottable points only, the way a map draws them.
func (s *Server) getCitizens(w http.ResponseWriter, r *http.Request) {
	pts := s.dash.Citizens.Plottable()
	res := citizensResponse{
		Points:   make([]dashboard.CitizenPoint, 0, len(pts)),
		Tooltips: make([]string, 0, len(pts)),
	}
	for _, v := range pts {
		res.Points = append(res.Points, v)
		res.Tooltips = append(res.Tooltips, v.Tooltip())
	}
	if lat, lon, ok := s.dash.Citizens.Center(); ok {
		res.CenterLat, res.CenterLon = &lat, &lon
	}
	render.JSON(w, r, res)
}

type geoSexResponse struct {
	dashboard.GeoSex
	Geos   []string             `json:"geos"`
	Sexes  []string             `json:"sexes"`
	Totals []dashboard.GeoTotal `json:"totals"`
}

func (s *Server) getGeoSex(w http.ResponseWriter, r *http.Request) {
	gs := s.dash.GeoSex
	render.JSON(w, r, geoSexResponse{
		GeoSex: gs,
		Geos:   gs.Geos(),
		Sexes:  gs.Sexes(),
		Totals: gs.Totals(),
	})
}

func (s *Server) getReference(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dash.Citizenship)
}

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}
