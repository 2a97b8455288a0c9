// Scribe orchestrator server - runs research missions and streams progress
// over HTTP/WebSocket.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/scribe-research/scribe/pkg/agents"
	"github.com/scribe-research/scribe/pkg/api"
	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/database"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/mission"
	"github.com/scribe-research/scribe/pkg/retrieval"
	"github.com/scribe-research/scribe/pkg/services"
	"github.com/scribe-research/scribe/pkg/tools"
	"github.com/scribe-research/scribe/pkg/usage"
	"github.com/scribe-research/scribe/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	gin.SetMode(getEnv("GIN_MODE", "release"))

	log.Printf("Starting %s", version.Full())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("Connected to PostgreSQL, schema up to date")

	// Services
	missionService := services.NewMissionService(dbClient.Client)
	noteService := services.NewNoteService(dbClient.Client)
	logService := services.NewLogService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Progress bus + usage meter
	progressBus := bus.New(bus.WithPersister(eventService))
	meter := usage.NewMeter(progressBus, missionService)

	// Model dispatcher
	dispatcher := llm.NewDispatcher(cfg, meter)

	// Retrieval engine over the gRPC sidecars
	searcher, err := retrieval.NewGRPCSearcher(cfg.IndexServiceAddr)
	if err != nil {
		log.Fatalf("Failed to create index client: %v", err)
	}
	defer searcher.Close()

	var reranker retrieval.Reranker
	if cfg.RerankerEnabled {
		grpcReranker, err := retrieval.NewGRPCReranker(cfg.RerankServiceAddr)
		if err != nil {
			log.Fatalf("Failed to create rerank client: %v", err)
		}
		defer grpcReranker.Close()
		reranker = grpcReranker
	}

	engine := retrieval.NewEngine(
		retrieval.NewLLMStrategist(dispatcher),
		retrieval.NewLLMPreparer(dispatcher),
		searcher,
		reranker,
		nil, // document groups resolve to doc-id filters upstream of the core
	)

	// Tools
	webCache, err := tools.NewWebCache(cfg.WebCacheDir, cfg.WebCacheExpirationDays)
	if err != nil {
		log.Fatalf("Failed to initialize web cache: %v", err)
	}
	fileReader, err := tools.NewFileReaderTool(cfg.AllowedFileBasePath)
	if err != nil {
		log.Fatalf("Failed to initialize file reader: %v", err)
	}

	registry := tools.NewRegistry()
	registry.Register(tools.NewDocumentSearchTool(engine))
	registry.Register(tools.NewWebSearchTool(searchProvider(cfg), tools.NewRateGate(), meter))
	registry.Register(tools.NewWebFetchTool(webCache))
	registry.Register(fileReader)
	registry.Register(tools.NewCalculatorTool())
	log.Printf("Registered tools: %v", registry.Names())

	// Agents + controller + pool
	agentSet := mission.AgentSet{
		Messenger:  agents.NewMessenger(dispatcher),
		Planner:    agents.NewPlanner(dispatcher),
		Researcher: agents.NewResearcher(dispatcher, registry),
		Reflection: agents.NewReflection(dispatcher),
		Writer:     agents.NewWriter(dispatcher),
		Assigner:   agents.NewNoteAssigner(dispatcher),
	}
	store := mission.NewStore(missionService, noteService)
	controller := mission.NewController(cfg, store, missionService, noteService,
		logService, eventService, progressBus, meter, dispatcher, agentSet)

	if err := controller.RecoverStranded(ctx); err != nil {
		log.Printf("Stranded mission recovery failed: %v", err)
	}

	pool := mission.NewPool(cfg.Pool, missionService, controller)
	controller.AttachPool(pool)
	pool.Start(ctx)
	defer pool.Stop()

	cleanup := mission.NewCleanupService(mission.DefaultRetentionConfig(), eventService)
	cleanup.Start(ctx)
	defer cleanup.Stop()

	// HTTP server
	server := api.NewServer(dbClient, controller, missionService, noteService,
		logService, eventService, progressBus)

	log.Printf("HTTP server listening on :%s", httpPort)
	if err := server.Run(":" + httpPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// searchProvider picks the configured web search provider.
func searchProvider(cfg *config.Config) tools.SearchProvider {
	switch cfg.WebSearchProvider {
	case "tavily":
		return tools.NewTavilyProvider(cfg.TavilyAPIKey)
	case "linkup":
		return tools.NewLinkupProvider(cfg.LinkupAPIKey)
	default:
		return tools.NewSearxngProvider(cfg.SearxngBaseURL, getEnv("SEARXNG_CATEGORIES", "general"))
	}
}
