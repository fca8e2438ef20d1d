// internal/commands/serve.go
package bstreport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mwiater/bstreport/internal/appconfig"
	"github.com/mwiater/bstreport/internal/logging"
	"github.com/mwiater/bstreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveRefreshSeconds int

// serveCmd serves the report over HTTP. The tables are fetched once in the
// background; the page refreshes itself until they have settled.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the report over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		ctx := commandContext(cmd)

		srv := newReportServer(cfg, newLoader(cfg), serveRefreshSeconds)
		go srv.loader.Load(ctx)
		go srv.precomputeCharts(ctx)

		httpSrv := &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           srv.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logging.LogEvent("[SERVE] listening on http://%s", httpSrv.Addr)
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logging.LogEvent("[SERVE] shutting down")
			return httpSrv.Shutdown(shutdownCtx)
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve: %w", err)
		}
	},
}

type errResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// reportServer renders the loader's current snapshot on every request.
// Charts are drawn once, after the loader settles.
type reportServer struct {
	cfg            appconfig.Config
	loader         *report.Loader
	refreshSeconds int

	chartsOnce sync.Once
	chartPNGs  map[string][]byte
}

func newReportServer(cfg appconfig.Config, loader *report.Loader, refreshSeconds int) *reportServer {
	return &reportServer{cfg: cfg, loader: loader, refreshSeconds: refreshSeconds}
}

func (s *reportServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /charts/{file}", s.handleChart)
	return mux
}

// precomputeCharts draws the charts as soon as the loader settles.
func (s *reportServer) precomputeCharts(ctx context.Context) {
	if !s.cfg.RenderCharts {
		return
	}
	select {
	case <-s.loader.Done():
		s.renderedCharts()
	case <-ctx.Done():
	}
}

// renderedCharts returns the PNG bytes of every chart that could be drawn
// from the settled state. It must not be called while loading.
func (s *reportServer) renderedCharts() map[string][]byte {
	s.chartsOnce.Do(func() {
		state := s.loader.Snapshot()
		s.chartPNGs = make(map[string][]byte)
		for name, render := range chartRenderers(state) {
			var buf bytes.Buffer
			if err := render(&buf); err != nil {
				logging.LogEvent("[CHART] %s not rendered: %v", name, err)
				continue
			}
			s.chartPNGs[name] = buf.Bytes()
		}
	})
	return s.chartPNGs
}

func (s *reportServer) view() report.View {
	state := s.loader.Snapshot()
	page := pageFor(s.cfg)
	if s.cfg.RenderCharts && !state.Loading {
		for name := range s.renderedCharts() {
			page = page.WithChart(name, "/charts/"+name+".png")
		}
	}
	v := viewFor(s.cfg, page, state)
	if state.Loading {
		v.RefreshSeconds = s.refreshSeconds
	}
	return v
}

func (s *reportServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := report.RenderHTML(&buf, s.view()); err != nil {
		logging.LogEvent("[SERVE] render html for %s: %v", r.RemoteAddr, err)
		writeJSON(w, http.StatusInternalServerError, errResp{OK: false, Error: "render failed"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *reportServer) handleReport(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, report.NewAnalysis(s.view(), sourcesFor(s.cfg)))
}

func (s *reportServer) handleChart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	name, ok := strings.CutSuffix(file, ".png")
	if !ok {
		writeJSON(w, http.StatusNotFound, errResp{OK: false, Error: "unknown chart: " + file})
		return
	}

	state := s.loader.Snapshot()
	if state.Loading {
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, errResp{OK: false, Error: "report is still loading"})
		return
	}
	if _, known := chartRenderers(state)[name]; !known {
		writeJSON(w, http.StatusNotFound, errResp{OK: false, Error: "unknown chart: " + name})
		return
	}
	png, ok := s.renderedCharts()[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, errResp{OK: false, Error: "chart unavailable: " + name})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func init() {
	serveCmd.Flags().String("listen", "", "address to listen on (default 127.0.0.1:8080)")
	serveCmd.Flags().IntVar(&serveRefreshSeconds, "refresh", 2, "seconds between page refreshes while loading")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))

	rootCmd.AddCommand(serveCmd)
}
