package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"lifegrid/internal/server"
)

func main() {
	cfg := server.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen on %s: %v", cfg.Addr, err)
		}
	}()

	srv.Run(ctx)

	log.Println("shutting down")
	if err := httpSrv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
