package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/lzhang/learning-buddy/internal/ai"
	"github.com/lzhang/learning-buddy/internal/config"
	"github.com/lzhang/learning-buddy/internal/handlers"
	"github.com/lzhang/learning-buddy/internal/middleware"
	"github.com/lzhang/learning-buddy/internal/store/sqlstore"
)

var addr = flag.String("addr", "", "http service address (overrides PORT)")

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	// Initialize Database
	store, err := sqlstore.New(cfg.DBDriver, cfg.DBDSN)
	// store, err := sqlstore.New("postgres", "user=user password=password dbname=learning_buddy sslmode=disable")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	var gen ai.Generator
	if cfg.GitHubPAT != "" {
		gen = ai.NewGitHubClient(cfg.GitHubPAT, cfg.AIEndpoint, cfg.AIModel, cfg.AITimeout)
		log.Println("reply generation: GitHub Models API")
	} else {
		log.Println("reply generation: canned fallback (GITHUB_PAT not set)")
	}

	r := handlers.NewRouter(store, gen)

	log.Println("Starting server on", listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, middleware.CORS(middleware.Logging(r))))
}
