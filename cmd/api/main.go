package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/cache"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/infrastructure/integrator/openai"
	"github.com/vfg2006/app-store-api/infrastructure/integrator/virustotal"
	"github.com/vfg2006/app-store-api/infrastructure/migration"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/infrastructure/storage"
	"github.com/vfg2006/app-store-api/internal/api"
	"github.com/vfg2006/app-store-api/internal/api/handler"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/scheduler"
	"github.com/vfg2006/app-store-api/internal/usecases/assisting"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/internal/usecases/detecting"
	"github.com/vfg2006/app-store-api/internal/usecases/insighting"
	"github.com/vfg2006/app-store-api/internal/usecases/moderating"
	"github.com/vfg2006/app-store-api/internal/usecases/onboarding"
	"github.com/vfg2006/app-store-api/internal/usecases/promoting"
	"github.com/vfg2006/app-store-api/internal/usecases/publishing"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
	"github.com/vfg2006/app-store-api/internal/usecases/scanning"
	"github.com/vfg2006/app-store-api/pkg/log"
	"github.com/vfg2006/app-store-api/pkg/middleware"
)

const (
	rateLimitCleanupInterval = 5 * time.Minute
	rateLimitMaxIdle         = 15 * time.Minute
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível e o formato de log com base na configuração
	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	objectStorage := objectstorage(ctx, cfg.Storage)

	healthDependencies := map[string]handler.Pinger{
		"postgres": pgConn,
	}

	// sem Redis o perfil é consultado direto no banco
	var roleCache cache.RoleCache
	if cfg.Redis.Enabled {
		redisCache := redisconn(ctx, cfg.Redis)
		defer redisCache.Close()

		roleCache = redisCache
		healthDependencies["redis"] = redisCache
	}

	listingRepo := repository.NewListingRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	developerRepo := repository.NewDeveloperRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	scanRepo := repository.NewScanRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	authorizer := authenticating.NewAuthorizer(userRepo, roleCache, cfg.Auth.RoleCacheTTL)

	scanService := scanning.NewService(scanRepo, insightRepo, virustotal.NewClient(cfg.VirusTotal))
	insightService := insighting.NewService(userRepo, listingRepo, scanRepo, insightRepo)

	services := api.Services{
		Authenticator: authenticator,
		Authorizer:    authorizer,
		Publisher:     publishing.NewService(listingRepo, objectStorage, cfg.Storage.AppBucket, cfg.MaxUploadBytes()),
		Feed:          ranking.NewStoreFeedService(listingRepo),
		Moderator:     moderating.NewService(listingRepo),
		Campaigns:     promoting.NewService(promotionRepo, listingRepo),
		Onboarder:     onboarding.NewService(developerRepo, objectStorage, authorizer, cfg.Storage.DeveloperBucket),
		Assistant:     assisting.NewService(openai.NewClient(cfg.OpenAI)),
		Scanner:       scanService,
		CloneDetector: detecting.NewService(listingRepo),
		Insights:      insightService,
	}

	aiLimiter := middleware.NewRateLimiter(cfg.RateLimit.AIRequestsPerSecond, cfg.RateLimit.AIBurst)
	aiLimiter.StartCleanup(ctx, rateLimitCleanupInterval, rateLimitMaxIdle)

	// Inicializa os agendadores
	scanVerdictSyncService := scheduler.NewScanVerdictSyncService(scanService, cfg)
	insightSnapshotService := scheduler.NewInsightSnapshotService(insightService, cfg)

	if err := scanVerdictSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de vereditos de antivírus")
	} else {
		logrus.Info("Agendador de vereditos de antivírus iniciado com sucesso")
	}

	if err := insightSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retratos da loja")
	} else {
		logrus.Info("Agendador de retratos da loja iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		services,
		handler.CronJobServices{
			ScanVerdictSyncService: scanVerdictSyncService,
			InsightSnapshotService: insightSnapshotService,
		},
		aiLimiter,
		healthDependencies,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger aplica o formato padrão até a configuração ser carregada
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Configure("info", "text")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func objectstorage(ctx context.Context, storageConfig config.Storage) *storage.MinioStorage {
	objectStorage, err := storage.NewMinioStorage(storageConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o armazenamento de arquivos")
	}

	if err := objectStorage.EnsureBuckets(ctx, storageConfig.AppBucket, storageConfig.DeveloperBucket); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar os buckets de armazenamento")
	}

	logrus.Info("Armazenamento de arquivos pronto")
	return objectStorage
}

func redisconn(ctx context.Context, redisConfig config.Redis) *cache.RedisCache {
	redisCache := cache.NewRedisCache(redisConfig)

	if err := redisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return redisCache
}
