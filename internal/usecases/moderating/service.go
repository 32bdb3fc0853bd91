package moderating

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
)

var (
	ErrListingNotFound = errors.New("app não encontrado")
	ErrInvalidDays     = errors.New("a quantidade de dias deve estar entre 1 e 3650")
	ErrInvalidRank     = errors.New("o rank deve estar entre 0 e 2147483647")
	ErrInvalidStatus   = errors.New("status de moderação inválido")
	ErrMissingReason   = errors.New("motivo da rejeição é obrigatório")
)

const (
	promotionDay     = 24 * time.Hour
	maxPromotionDays = 3650
	// promotion_rank é INTEGER no banco
	maxPromotionRank = math.MaxInt32
)

// Moderator reúne as operações administrativas sobre os apps.
// A checagem de administrador é feita antes, pelo Authorizer.
type Moderator interface {
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string, reason string) error
	Publish(ctx context.Context, id string) error
	Unpublish(ctx context.Context, id string) error
	Promote(ctx context.Context, id string, days, rank int) (time.Time, error)
	Unpromote(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status *domain.ListingStatus) ([]domain.ListingSummary, error)
}

type Service struct {
	listingRepo repository.ListingRepository
	now         func() time.Time
}

func NewService(listingRepo repository.ListingRepository) *Service {
	return &Service{
		listingRepo: listingRepo,
		now:         time.Now,
	}
}

func (s *Service) Approve(ctx context.Context, id string) error {
	err := s.listingRepo.SetModeration(ctx, id, domain.ListingStatusApproved, true, nil)
	if err != nil {
		return translate(err, id)
	}

	logrus.Infof("App %s aprovado e publicado", id)
	return nil
}

func (s *Service) Reject(ctx context.Context, id string, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}

	err := s.listingRepo.SetModeration(ctx, id, domain.ListingStatusRejected, false, &reason)
	if err != nil {
		return translate(err, id)
	}

	logrus.Infof("App %s rejeitado: %s", id, reason)
	return nil
}

func (s *Service) Publish(ctx context.Context, id string) error {
	return translate(s.listingRepo.SetPublished(ctx, id, true), id)
}

func (s *Service) Unpublish(ctx context.Context, id string) error {
	return translate(s.listingRepo.SetPublished(ctx, id, false), id)
}

// Promote grava flag, expiração (agora + dias) e rank em uma única atualização
func (s *Service) Promote(ctx context.Context, id string, days, rank int) (time.Time, error) {
	if days <= 0 || days > maxPromotionDays {
		return time.Time{}, ErrInvalidDays
	}

	if rank < 0 || rank > maxPromotionRank {
		return time.Time{}, ErrInvalidRank
	}

	expiresAt := s.now().Add(time.Duration(days) * promotionDay)

	if err := s.listingRepo.Promote(ctx, id, expiresAt, rank); err != nil {
		return time.Time{}, translate(err, id)
	}

	logrus.Infof("App %s promovido até %s com rank %d", id, expiresAt.Format(time.RFC3339), rank)
	return expiresAt, nil
}

func (s *Service) Unpromote(ctx context.Context, id string) error {
	if err := s.listingRepo.Unpromote(ctx, id); err != nil {
		return translate(err, id)
	}

	logrus.Infof("Promoção do app %s removida", id)
	return nil
}

// ListByStatus lista os apps para a fila de moderação, na mesma ordem da vitrine
func (s *Service) ListByStatus(ctx context.Context, status *domain.ListingStatus) ([]domain.ListingSummary, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	listings, err := s.listingRepo.List(ctx, domain.ListingFilter{Status: status})
	if err != nil {
		return nil, err
	}

	now := s.now()

	ranked, err := ranking.Rank(listings, now)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ListingSummary, 0, len(ranked))
	for _, listing := range ranked {
		summaries = append(summaries, listing.Summary(now))
	}

	return summaries, nil
}

func translate(err error, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	return err
}
