package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/pkg/metrics"
)

const scanSyncTimeout = 5 * time.Minute

// PendingScanSyncer conclui as verificações de antivírus que ainda aguardam veredito
type PendingScanSyncer interface {
	SyncPending(ctx context.Context, batchSize int) (int, error)
}

// ScanVerdictSyncConfig representa a configuração do agendador de vereditos de antivírus
type ScanVerdictSyncConfig struct {
	CronSchedule string
	BatchSize    int
	SyncEnabled  bool
}

// ScanVerdictSyncService gerencia o agendamento da consulta de vereditos pendentes
type ScanVerdictSyncService struct {
	scheduler           *gocron.Scheduler
	config              ScanVerdictSyncConfig
	scanner             PendingScanSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCompletedScans  int
}

// NewScanVerdictSyncService cria uma nova instância do serviço de sincronização de vereditos
func NewScanVerdictSyncService(scanner PendingScanSyncer, appConfig *config.Config) *ScanVerdictSyncService {
	syncConfig := ScanVerdictSyncConfig{
		CronSchedule: appConfig.ScanVerdictSync.CronSchedule,
		BatchSize:    appConfig.ScanVerdictSync.BatchSize,
		SyncEnabled:  appConfig.ScanVerdictSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"batch_size":    syncConfig.BatchSize,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de vereditos de antivírus carregada")

	return &ScanVerdictSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		scanner:   scanner,
	}
}

// Start inicia o agendador
func (s *ScanVerdictSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vereditos de antivírus desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de vereditos de antivírus")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncVerdicts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vereditos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de vereditos de antivírus")
		s.scheduler.Stop()
	}()

	return nil
}

// syncVerdicts executa uma rodada, ignorando a chamada se outra já estiver em andamento
func (s *ScanVerdictSyncService) syncVerdicts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vereditos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, scanSyncTimeout)
	defer cancel()

	startTime := time.Now()

	completed, err := s.scanner.SyncPending(ctx, s.config.BatchSize)
	metrics.RecordJobRun("scan-verdicts", time.Since(startTime), err == nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar vereditos de antivírus")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"completed": completed,
	}).Info("Sincronização de vereditos de antivírus concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastCompletedScans = completed
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara uma rodada fora do agendamento
func (s *ScanVerdictSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vereditos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de vereditos de antivírus")
	go s.syncVerdicts(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ScanVerdictSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_batch_size":        s.config.BatchSize,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_completed_scans":   s.lastCompletedScans,
	}
}
