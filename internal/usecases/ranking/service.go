package ranking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
)

type RankingService interface {
	GetStoreFeed(ctx context.Context) ([]domain.ListingSummary, error)
}

type StoreFeedService struct {
	listingRepo repository.ListingRepository
	now         func() time.Time
}

func NewStoreFeedService(listingRepo repository.ListingRepository) RankingService {
	return &StoreFeedService{
		listingRepo: listingRepo,
		now:         time.Now,
	}
}

// GetStoreFeed busca os apps visíveis e devolve a vitrine ordenada.
// O instante de avaliação é capturado uma única vez para todo o lote.
func (s *StoreFeedService) GetStoreFeed(ctx context.Context) ([]domain.ListingSummary, error) {
	listings, err := s.listingRepo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	ranked, err := Rank(listings, now)
	if err != nil {
		logrus.WithError(err).Error("Apps inválidos retornados pelo banco ao montar a vitrine")
		return nil, err
	}

	feed := make([]domain.ListingSummary, 0, len(ranked))
	for _, listing := range ranked {
		feed = append(feed, listing.Summary(now))
	}

	return feed, nil
}
