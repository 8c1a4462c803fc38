package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-svgicons/pkg/deferred"
	"github.com/goliatone/go-svgicons/pkg/iconset"
	rendertemplate "github.com/goliatone/go-svgicons/pkg/render/template"
	"github.com/goliatone/go-svgicons/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

type serverConfig struct {
	Addr              string        `env:"SVGICONS_ADDR" envDefault:":8080"`
	Root              string        `env:"SVGICONS_ROOT" envDefault:"."`
	Config            string        `env:"SVGICONS_CONFIG" envDefault:"icons.yaml"`
	DefaultIcons      []string      `env:"SVGICONS_DEFAULT_ICONS" envSeparator:"," envDefault:"close"`
	ReadHeaderTimeout time.Duration `env:"SVGICONS_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SVGICONS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("svgicon-server: %v", err)
	}

	handler, err := newHandler(cfg, os.DirFS(cfg.Root))
	if err != nil {
		log.Fatalf("svgicon-server: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("svgicon-server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("svgicon-server: listen: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("svgicon-server: shutdown: %v", err)
	}
}

func loadConfig() (serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return serverConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// newHandler wires the icon factory and template engine into a chi router.
// deferred.Middleware gives every request its own registry.
func newHandler(cfg serverConfig, icons fs.FS) (http.Handler, error) {
	setConfig, err := iconset.LoadConfigFS(icons, cfg.Config)
	if err != nil {
		return nil, err
	}
	factory, err := iconset.NewFactory(icons, setConfig)
	if err != nil {
		return nil, err
	}

	templates, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(templates),
		gotemplate.WithFactory(factory),
		gotemplate.WithGlobalData(map[string]any{"title": "Icons"}),
	)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(deferred.Middleware)
	r.Get("/", indexHandler(engine, cfg.DefaultIcons))
	return r, nil
}

func indexHandler(engine rendertemplate.TemplateRenderer, defaults []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := defaults
		if raw := r.URL.Query().Get("icons"); raw != "" {
			names = splitNames(raw)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := engine.RenderTemplate(r.Context(), "index", map[string]any{"icons": names}, w); err != nil {
			log.Printf("svgicon-server: render index: %v", err)
			http.Error(w, "failed to render icons", http.StatusInternalServerError)
		}
	}
}

func splitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
