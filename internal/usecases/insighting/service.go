package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const dashboardSize = 10

type Service struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	scanRepo    repository.ScanRepository
	insightRepo repository.InsightRepository
	now         func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	scanRepo repository.ScanRepository,
	insightRepo repository.InsightRepository,
) *Service {
	return &Service{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		scanRepo:    scanRepo,
		insightRepo: insightRepo,
		now:         time.Now,
	}
}

func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	apps, err := s.listingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar apps: %w", err)
	}

	return &domain.AdminStats{Users: users, Apps: apps}, nil
}

func (s *Service) Dashboard(ctx context.Context) ([]domain.ListingSummary, error) {
	listings, err := s.listingRepo.ListLatest(ctx, dashboardSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]domain.ListingSummary, 0, len(listings))
	for _, listing := range listings {
		summaries = append(summaries, listing.Summary(now))
	}

	return summaries, nil
}

func (s *Service) Latest(ctx context.Context) (*domain.AdminInsight, error) {
	return s.insightRepo.GetLatestSnapshot(ctx)
}

func (s *Service) Record(ctx context.Context, req domain.RecordInsightRequest) (*domain.AdminInsight, error) {
	insight := &domain.AdminInsight{
		TotalApps:  valueOrZero(req.TotalApps),
		TotalScans: valueOrZero(req.TotalScans),
		ScanPass:   valueOrZero(req.ScanPass),
		ScanFail:   valueOrZero(req.ScanFail),
	}

	if err := s.insightRepo.CreateSnapshot(ctx, insight); err != nil {
		return nil, err
	}

	return insight, nil
}

func (s *Service) Snapshot(ctx context.Context) (*domain.AdminInsight, error) {
	apps, err := s.listingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar apps: %w", err)
	}

	totals, err := s.scanRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	insight := &domain.AdminInsight{
		TotalApps:  apps,
		TotalScans: totals.Total,
		ScanPass:   totals.Clean,
		ScanFail:   totals.Malicious,
	}

	if err := s.insightRepo.CreateSnapshot(ctx, insight); err != nil {
		return nil, err
	}

	logrus.Infof("Retrato da loja gravado: %d apps, %d verificações (%d limpas, %d maliciosas)",
		insight.TotalApps, insight.TotalScans, insight.ScanPass, insight.ScanFail)

	return insight, nil
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
