package detecting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const (
	reasonPackageExists = "Package ID already exists"
	reasonSimilarName   = "Similar app name exists"
	reasonNoDuplicate   = "No duplicate found"
)

var ErrMissingCriteria = errors.New("informe package_id ou name")

type CloneDetector interface {
	Check(ctx context.Context, req domain.CloneCheckRequest) (*domain.CloneCheckResult, error)
}

type Service struct {
	listingRepo repository.ListingRepository
}

func NewService(listingRepo repository.ListingRepository) *Service {
	return &Service{
		listingRepo: listingRepo,
	}
}

// Check procura primeiro o package_id exato e depois um nome parecido, ignorando apps removidos
func (s *Service) Check(ctx context.Context, req domain.CloneCheckRequest) (*domain.CloneCheckResult, error) {
	packageID := strings.TrimSpace(req.PackageID)
	name := strings.TrimSpace(req.Name)

	if packageID == "" && name == "" {
		return nil, ErrMissingCriteria
	}

	if packageID != "" {
		listing, err := s.listingRepo.FindByPackageID(ctx, packageID)
		if err != nil {
			return nil, err
		}
		if listing != nil {
			return &domain.CloneCheckResult{Clone: true, Reason: reasonPackageExists}, nil
		}
	}

	if name != "" {
		listing, err := s.listingRepo.FindByNameLike(ctx, escapeLike(name))
		if err != nil {
			return nil, err
		}
		if listing != nil {
			return &domain.CloneCheckResult{Clone: true, Reason: reasonSimilarName}, nil
		}
	}

	return &domain.CloneCheckResult{Clone: false, Reason: reasonNoDuplicate}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
