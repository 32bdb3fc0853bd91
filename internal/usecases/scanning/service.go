package scanning

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/integrator/virustotal"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/utils"
)

const (
	defaultBatchSize   = 20
	securityEventLimit = 100
)

var (
	ErrMissingFileURL = errors.New("file_url é obrigatório")
	ErrScanNotFound   = errors.New("verificação não encontrada")
	ErrUpstream       = errors.New("falha no provedor de antivírus")
)

type Scanner interface {
	Submit(ctx context.Context, userID int, req domain.VirusScanRequest) (*domain.VirusScanResponse, error)
	Get(ctx context.Context, id string) (*domain.VirusScan, error)
	SyncPending(ctx context.Context, batchSize int) (int, error)
	LogEvent(ctx context.Context, req domain.SecurityEventRequest) (*domain.SecurityEvent, error)
	ListEvents(ctx context.Context) ([]*domain.SecurityEvent, error)
}

type Service struct {
	scanRepo    repository.ScanRepository
	insightRepo repository.InsightRepository
	provider    virustotal.Scanner
}

func NewService(scanRepo repository.ScanRepository, insightRepo repository.InsightRepository, provider virustotal.Scanner) *Service {
	return &Service{
		scanRepo:    scanRepo,
		insightRepo: insightRepo,
		provider:    provider,
	}
}

// Submit delega a URL ao provedor e registra a verificação como enfileirada
func (s *Service) Submit(ctx context.Context, userID int, req domain.VirusScanRequest) (*domain.VirusScanResponse, error) {
	fileURL := strings.TrimSpace(req.FileURL)
	if fileURL == "" {
		return nil, ErrMissingFileURL
	}

	analysisID, err := s.provider.SubmitURL(ctx, fileURL)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao enviar %s para verificação", fileURL)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	scan := &domain.VirusScan{
		ID:          id,
		ListingID:   req.ListingID,
		FileURL:     fileURL,
		AnalysisID:  analysisID,
		Status:      domain.ScanStatusQueued,
		Verdict:     domain.ScanVerdictUnknown,
		RequestedBy: userID,
	}

	if err := s.scanRepo.Create(ctx, scan); err != nil {
		return nil, err
	}

	return &domain.VirusScanResponse{
		Scanned:    true,
		AnalysisID: analysisID,
		ScanID:     scan.ID,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.VirusScan, error) {
	scan, err := s.scanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scan == nil {
		return nil, fmt.Errorf("%w: %s", ErrScanNotFound, id)
	}

	return scan, nil
}

// SyncPending consulta o provedor para as verificações enfileiradas e grava os vereditos concluídos.
// Retorna quantas verificações foram concluídas nesta rodada
func (s *Service) SyncPending(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	scans, err := s.scanRepo.ListPending(ctx, uint64(batchSize))
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, scan := range scans {
		select {
		case <-ctx.Done():
			return completed, ctx.Err()
		default:
		}

		analysis, err := s.provider.GetAnalysis(ctx, scan.AnalysisID)
		if err != nil {
			logrus.WithError(err).Warnf("Erro ao consultar análise %s", scan.AnalysisID)
			continue
		}

		if !analysis.Completed() {
			continue
		}

		scan.Status = domain.ScanStatusCompleted
		scan.Verdict = analysis.Verdict()
		scan.Malicious = analysis.Malicious
		scan.Suspicious = analysis.Suspicious
		scan.Harmless = analysis.Harmless

		if err := s.scanRepo.UpdateResult(ctx, scan); err != nil {
			logrus.WithError(err).Errorf("Erro ao gravar resultado da verificação %s", scan.ID)
			continue
		}

		if scan.Verdict == domain.ScanVerdictMalicious {
			scanID := scan.ID
			event := &domain.SecurityEvent{VirusDetected: true, ScanID: &scanID}
			if err := s.insightRepo.CreateSecurityEvent(ctx, event); err != nil {
				logrus.WithError(err).Errorf("Erro ao registrar evento de segurança da verificação %s", scan.ID)
			}
			logrus.Warnf("Arquivo malicioso detectado: %s (%d detecções)", scan.FileURL, scan.Malicious)
		}

		completed++
	}

	return completed, nil
}

func (s *Service) LogEvent(ctx context.Context, req domain.SecurityEventRequest) (*domain.SecurityEvent, error) {
	event := &domain.SecurityEvent{VirusDetected: req.VirusDetected}

	if err := s.insightRepo.CreateSecurityEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *Service) ListEvents(ctx context.Context) ([]*domain.SecurityEvent, error) {
	return s.insightRepo.ListSecurityEvents(ctx, securityEventLimit)
}
