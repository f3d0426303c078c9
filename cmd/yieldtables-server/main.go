package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/openyieldtables/go-yieldtables/internal/server"
	"github.com/openyieldtables/go-yieldtables/pkg/apispec"
	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
)

func main() {
	var (
		addrFlag   = flag.String("addr", "", "HTTP listen address (overrides config)")
		configFlag = flag.String("config", "", "Config file (JSON or YAML)")
		dataFlag   = flag.String("data", "", "Dataset directory (overrides config; empty uses the embedded dataset)")
		graceFlag  = flag.Duration("grace", 0, "Shutdown grace period (overrides config)")
	)
	flag.Parse()

	cfg, err := server.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *dataFlag != "" {
		cfg.DataDir = *dataFlag
	}
	grace := cfg.Grace()
	if *graceFlag > 0 {
		grace = *graceFlag
	}

	var storeOptions []dataset.Option
	if cfg.DataDir != "" {
		storeOptions = append(storeOptions, dataset.WithBaseDir(cfg.DataDir))
	}
	store, err := dataset.New(storeOptions...)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	doc, err := apispec.Load(context.Background())
	if err != nil {
		log.Fatalf("apispec: %v", err)
	}

	srv, err := server.New(store,
		server.WithDocument(doc),
		server.WithRenderOptions(render.RenderOptions{
			Head:   cfg.Head,
			Header: cfg.Header,
			Theme:  cfg.Theme.RendererConfig(),
		}),
	)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv,
	}

	log.Printf("listening on %s (%d yield tables)", cfg.Addr, len(store.Metas()))

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
