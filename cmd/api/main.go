package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jacksonferrigno/dxter/internal/application"
	appchat "github.com/jacksonferrigno/dxter/internal/application/chat"
	appclassify "github.com/jacksonferrigno/dxter/internal/application/classify"
	"github.com/jacksonferrigno/dxter/internal/config"
	"github.com/jacksonferrigno/dxter/internal/domain/chatlog"
	domclassifier "github.com/jacksonferrigno/dxter/internal/domain/classifier"
	"github.com/jacksonferrigno/dxter/internal/domain/conversation"
	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	openaiclassifier "github.com/jacksonferrigno/dxter/internal/infra/classifier/openai"
	rulesclassifier "github.com/jacksonferrigno/dxter/internal/infra/classifier/rules"
	mysqlp "github.com/jacksonferrigno/dxter/internal/infra/db/mysql"
	postgresp "github.com/jacksonferrigno/dxter/internal/infra/db/postgres"
	"github.com/jacksonferrigno/dxter/internal/infra/httpserver"
	minioStore "github.com/jacksonferrigno/dxter/internal/infra/storage"
	"github.com/jacksonferrigno/dxter/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// knowledge base: malformed reference data is fatal here, never per request
	base := knowledge.Default()
	if err := base.Validate(); err != nil {
		log.Fatalf("knowledge base invalid: %v", err)
	}

	// persistence is optional; without a driver the service still answers
	// queries, it just cannot serve history or stats
	var logs chatlog.Repository
	var unresolved chatlog.UnresolvedRepository
	checkers := map[string]middleware.HealthChecker{}
	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		logs = mysqlp.NewChatLogRepository(db)
		unresolved = mysqlp.NewUnresolvedRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		logs = postgresp.NewChatLogRepository(db)
		unresolved = postgresp.NewUnresolvedRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "":
		log.Println("no database driver configured, running without persistence")
	default:
		log.Fatalf("unknown database driver: %q", cfg.Database.Driver)
	}

	// transcript archive, optional
	var archive chatlog.TranscriptArchive
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		archive = store
	}

	// intent classifier
	var clf domclassifier.Client
	switch cfg.Classifier.Provider {
	case "rules":
		clf = rulesclassifier.NewClient(base)
	case "openai":
		if cfg.Classifier.APIKey == "" {
			log.Fatalf("classifier provider openai requires an API key")
		}
		clf = openaiclassifier.NewClient(cfg.Classifier.APIKey, cfg.Classifier.Model)
	default:
		log.Fatalf("unknown classifier provider: %q", cfg.Classifier.Provider)
	}

	// init services
	chatSvc := &appchat.Service{
		Knowledge:  base,
		Contexts:   conversation.NewStore(),
		Classifier: clf,
		Logs:       logs,
		Unresolved: unresolved,
		Archive:    archive,
		Clock:      application.SystemClock{},
	}
	classifySvc := appclassify.NewService(clf)

	handler := httpserver.NewRouter(chatSvc, classifySvc, httpserver.Options{
		RateLimitCapacity:   cfg.RateLimit.Capacity,
		RateLimitRefillRate: cfg.RateLimit.RefillRate,
		HealthCheckers:      checkers,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
