package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/config"
	"github.com/hakimdiab/seamnote/internal/db"
	"github.com/hakimdiab/seamnote/internal/filestore"
	"github.com/hakimdiab/seamnote/internal/handler"
	"github.com/hakimdiab/seamnote/internal/job"
	"github.com/hakimdiab/seamnote/internal/middleware"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/nlp"
	"github.com/hakimdiab/seamnote/internal/pkg/password"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/schedule"
	"github.com/hakimdiab/seamnote/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "seamnote",
		Short: "seamnote interview backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run seamnote server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn, cfg.Database.Driver); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, repo.NewDB(conn, cfg.Database.Driver))
		},
	}

	hashCmd := &cobra.Command{
		Use:   "hashpass <password>",
		Short: "print the bcrypt hash for the consultant password config field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := password.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd, hashCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, database *repo.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("file_store", cfg.FileStore.Type),
	)

	sessionRepo := repo.NewSessionRepo(database)
	messageRepo := repo.NewMessageRepo(database)
	noteRepo := repo.NewFieldNoteRepo(database)
	runRepo := repo.NewClusterRunRepo(database)

	chatProvider, err := ai.NewChatProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		return fmt.Errorf("init chat provider: %w", err)
	}
	embedProvider, err := ai.NewEmbedProvider(cfg.AI.EmbedProvider, cfg.AI.EmbedData)
	if err != nil {
		return fmt.Errorf("init embed provider: %w", err)
	}
	chatOracle := ai.NewChatOracle(chatProvider, cfg.AI.Model)
	embedOracle := ai.NewEmbedOracle(embedProvider, cfg.AI.EmbedModel)

	var tagger nlp.EntityTagger
	if cfg.NER.Endpoint != "" {
		tagger = nlp.NewHTTPEntityTagger(cfg.NER.Endpoint, time.Duration(cfg.NER.TimeoutSecs)*time.Second)
	}
	detector := nlp.NewDetector()
	anonymizer := nlp.NewAnonymizer(tagger)

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	categorizer := service.NewCategorizerService(chatOracle)
	interviewService := service.NewInterviewService(sessionRepo, messageRepo, noteRepo, detector, anonymizer, categorizer, chatOracle)
	summaryService := service.NewSummaryService(sessionRepo, noteRepo, chatOracle)
	clusterService := service.NewClusterService(noteRepo, runRepo, embedOracle, cfg.Cluster.DistanceThreshold)
	dashboardService := service.NewDashboardService(sessionRepo, messageRepo, noteRepo)
	exportService := service.NewExportService(sessionRepo, messageRepo, noteRepo)
	archiveService := service.NewArchiveService(exportService, store)
	authService := service.NewAuthService(cfg.ConsultantUser, cfg.ConsultantPasswordHash, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))

	interviewService.AddCompletionHook(func(ctx context.Context, session *model.InterviewSession) {
		if _, err := summaryService.Generate(ctx, session.ID); err != nil {
			logutil.GetLogger(ctx).Warn("summary generation on completion failed",
				zap.String("session_id", session.ID), zap.Error(err))
		}
	})
	interviewService.AddCompletionHook(archiveService.CompletionHook())

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Interview: handler.NewInterviewHandler(interviewService),
		Dashboard: handler.NewDashboardHandler(dashboardService, clusterService, summaryService, exportService),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewEmbeddingBackfillJob(clusterService), cfg.Jobs.EmbeddingBackfillSpec); err != nil {
		return fmt.Errorf("schedule backfill job: %w", err)
	}
	if err := scheduler.AddJob(job.NewReclusterJob(clusterService), cfg.Jobs.ReclusterSpec); err != nil {
		return fmt.Errorf("schedule recluster job: %w", err)
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(ctx)
	defer scheduler.Stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
