package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/api/handler"
	"github.com/vfg2006/app-store-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-api/internal/config"
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
	"github.com/vfg2006/app-store-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Authorizer    authenticating.Authorizer
	Publisher     publishing.Publisher
	Feed          ranking.RankingService
	Moderator     moderating.Moderator
	Campaigns     promoting.CampaignManager
	Onboarder     onboarding.Onboarder
	Assistant     assisting.Assistant
	Scanner       scanning.Scanner
	CloneDetector detecting.CloneDetector
	Insights      insighting.AdminInsighter
}

func New(
	config *config.Config,
	services Services,
	cronServices handler.CronJobServices,
	aiLimiter *middleware.RateLimiter,
	healthDependencies map[string]handler.Pinger,
) (*Server, error) {
	rt := router.New(
		router.WithAuthentication(middleware.AuthMiddleware(services.Authenticator)),
		router.WithRoutes(handler.Healthcheck(healthDependencies)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, services.Authorizer)...),
		router.WithRoutes(handler.Listings(services.Publisher, services.Feed, services.Authorizer, config.MaxUploadBytes())...),
		router.WithRoutes(handler.Admin(services.Moderator, services.Insights, services.Authorizer)...),
		router.WithRoutes(handler.Promotions(services.Campaigns, services.Authorizer)...),
		router.WithRoutes(handler.Developers(services.Onboarder, services.Authorizer)...),
		router.WithRoutes(handler.AI(services.Assistant, aiLimiter)...),
		router.WithRoutes(handler.Security(services.Scanner, services.CloneDetector, services.Authorizer)...),
		router.WithRoutes(handler.Insights(services.Insights, services.Authorizer)...),
		router.WithRoutes(handler.CronJobs(cronServices, services.Authorizer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

// Handler expõe a cadeia completa de middlewares e rotas, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}
