package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/catalog"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/config"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/handler"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/infrastructure/openai"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/infrastructure/session"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/router"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/usecase"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/pkg/logger"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/pkg/retry"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "chowpal-apiserver",
	Short: "Chowpal API server, the food-ordering assistant backend",
	Long: `Chowpal API server is the HTTP backend of the Chowdeck food-ordering
assistant demo. It forwards chat messages to Azure OpenAI, resolves the
assistant's item recommendations against the menu catalog, and keeps
per-session conversation history.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("chowpal api server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz framework logs through slog
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	// Catalog and session store
	menuCatalog := catalog.New()
	sessionStore := session.NewStore()

	// Completion orchestration
	completionClient := openai.NewClient(cfg.AzureOpenAI, slog.Default())
	chatUsecase, err := usecase.NewChatUsecase(
		completionClient,
		menuCatalog,
		usecase.DefaultRetryPolicy,
		retry.Sleep,
		slog.Default(),
	)
	if err != nil {
		slog.Error("failed to initialize chat usecase", "error", err)
		os.Exit(1)
	}

	chatHandler := handler.NewChatHandler(chatUsecase, sessionStore, slog.Default())
	catalogHandler := handler.NewCatalogHandler(menuCatalog)
	healthHandler := handler.NewHealthHandler()

	slog.Info("handlers initialized",
		"completion_configured", completionClient.Configured(),
	)

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, chatHandler, catalogHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
