package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/chiefgooter/sec-financial-app/pkg/api/config"
	factsAPI "github.com/chiefgooter/sec-financial-app/pkg/api/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/api/middleware"
	"github.com/chiefgooter/sec-financial-app/pkg/api/web"
	"github.com/chiefgooter/sec-financial-app/pkg/core/agent"
	"github.com/chiefgooter/sec-financial-app/pkg/core/analysis"
	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/ingest"
	"github.com/chiefgooter/sec-financial-app/pkg/core/prompt"
	"github.com/chiefgooter/sec-financial-app/pkg/core/settings"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := settings.Load(settings.Path())
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	client := ingest.NewEDGARClient(
		ingest.WithHTTPClient(&http.Client{Timeout: cfg.SEC.Timeout}),
		ingest.WithUserAgent(cfg.SEC.UserAgent),
		ingest.WithCourtesyDelay(cfg.SEC.CourtesyDelay),
	)
	fetcher := facts.NewFetcher(client,
		facts.WithResolver(ingest.NewTickerResolver(client)),
		facts.WithMetrics(cfg.Metrics),
	)

	// Initialize Prompt Library
	if cfg.PromptsDir != "" {
		if err := prompt.Get().LoadFromDirectory(cfg.PromptsDir); err != nil {
			fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
			fmt.Println("  Falling back to built-in prompts")
		}
	}

	agentMgr := agent.NewManager(cfg.LLM)
	analyst := analysis.NewService(agentMgr)

	mux := http.NewServeMux()
	mux.Handle("/", web.NewHandler(fetcher, analyst))

	factsHandler := factsAPI.NewHandler(fetcher, analyst)
	mux.HandleFunc("/api/facts", factsHandler.HandleFacts)
	mux.HandleFunc("/api/facts/summary", factsHandler.HandleSummary)

	configHandler := config.NewHandler(agentMgr, fetcher.Metrics(), client.UserAgent())
	configHandler.AllowSwitch = cfg.AllowProviderSwitch
	mux.HandleFunc("/api/config", configHandler.HandleConfig)
	mux.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	fmt.Printf("Server starting on %s...\n", cfg.ListenAddr)
	fmt.Println("  - GET  /                    (company lookup page)")
	fmt.Println("  - GET  /api/facts?cik=")
	fmt.Println("  - POST /api/facts/summary")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /healthz")
	fmt.Printf("  SEC User-Agent: %s\n", client.UserAgent())
	if analyst.Available() {
		fmt.Printf("  AI summaries: %s\n", agentMgr.GetActiveProvider())
	} else {
		fmt.Println("  AI summaries: disabled (set llm.active_provider and an API key)")
	}

	handler := middleware.WithRequestID(middleware.CORS(mux))
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
