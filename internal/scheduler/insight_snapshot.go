package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/metrics"
)

// SnapshotTaker grava um retrato consolidado da loja
type SnapshotTaker interface {
	Snapshot(ctx context.Context) (*domain.AdminInsight, error)
}

// InsightSnapshotService agenda a gravação periódica do retrato administrativo
type InsightSnapshotService struct {
	scheduler         *gocron.Scheduler
	cronSchedule      string
	enabled           bool
	insighter         SnapshotTaker
	running           bool
	mutex             sync.Mutex
	lastRunStartedAt  time.Time
	lastSnapshot      *domain.AdminInsight
	lastSnapshotError string
}

func NewInsightSnapshotService(insighter SnapshotTaker, appConfig *config.Config) *InsightSnapshotService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.InsightSnapshot.CronSchedule,
		"enabled":       appConfig.InsightSnapshot.Enabled,
	}).Info("Configuração do agendador de retratos da loja carregada")

	return &InsightSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.InsightSnapshot.CronSchedule,
		enabled:      appConfig.InsightSnapshot.Enabled,
		insighter:    insighter,
	}
}

func (s *InsightSnapshotService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Retratos periódicos da loja desabilitados por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.takeSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retrato da loja: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retratos da loja")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightSnapshotService) takeSnapshot(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Retrato da loja já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	startTime := time.Now()
	insight, err := s.insighter.Snapshot(ctx)
	metrics.RecordJobRun("insights", time.Since(startTime), err == nil)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar retrato da loja")
		s.lastSnapshotError = err.Error()
		return
	}

	s.lastSnapshot = insight
	s.lastSnapshotError = ""
}

func (s *InsightSnapshotService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Retrato da loja já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando retrato manual da loja")
	go s.takeSnapshot(context.Background())
}

func (s *InsightSnapshotService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":             s.enabled,
		"cron":                s.cronSchedule,
		"running":             s.running,
		"last_run_started_at": s.lastRunStartedAt,
		"last_snapshot":       s.lastSnapshot,
		"last_error":          s.lastSnapshotError,
	}
}
