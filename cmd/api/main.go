package main

import (
	"log"
	"net/http"

	"redguard/internal/api"
	"redguard/internal/config"
	"redguard/internal/providers"
	"redguard/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	pm, err := providers.NewManager(cfg.Providers)
	if err != nil {
		log.Fatal(err)
	}
	st := store.New()
	srv := api.NewServer(cfg, st, pm)
	log.Printf("redguard api listening on %s providers=%q", cfg.APIAddr, cfg.Providers)
	if err := http.ListenAndServe(cfg.APIAddr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
