// @title           Verity API
// @version         1.0
// @description     Classifies news text as FAKE or REAL with a pre-trained text classifier.
// @BasePath        /
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/crimson-sun/verity/internal/config"
	"github.com/crimson-sun/verity/internal/engine"
	"github.com/crimson-sun/verity/internal/engine/artifact"
	"github.com/crimson-sun/verity/internal/engine/classifier"
	"github.com/crimson-sun/verity/internal/engine/normalizer"
	"github.com/crimson-sun/verity/internal/engine/verdict"
	"github.com/crimson-sun/verity/internal/logging"
	"github.com/crimson-sun/verity/internal/server"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.GinMode)

	// Load artifacts.
	paths := artifact.Resolve(cfg.Engine.ModelDir, cfg.Engine.VectorizerPath, cfg.Engine.ClassifierPath)
	bundle, err := artifact.Load(paths, classifier.Options{RuntimeLibrary: cfg.Engine.RuntimeLibrary})
	if err != nil {
		slog.Error("failed to load model artifacts", "error", err)
		os.Exit(1)
	}
	defer bundle.Close()

	slog.Info("model loaded",
		"vectorizer", bundle.Info.VectorizerPath,
		"classifier", bundle.Info.ClassifierPath,
		"kind", bundle.Info.ClassifierKind,
		"features", bundle.Info.Features,
		"classes", bundle.Info.Classes,
	)

	eng := engine.New(
		normalizer.New(cfg.Engine.FoldAccents),
		bundle.Vectorizer,
		bundle.Classifier,
		verdict.New(cfg.Engine.Threshold, cfg.Engine.FakeClassIndex),
	)

	// Set up graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, eng, bundle.Info)
	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		bundle.Close()
		os.Exit(1)
	}
	slog.Info("server stopped")
}
