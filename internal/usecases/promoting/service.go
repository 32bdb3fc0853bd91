package promoting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/utils"
)

var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrInvalidType      = errors.New("tipo de campanha inválido")
	ErrMissingAppID     = errors.New("campanhas do tipo app exigem app_id")
	ErrMissingTitle     = errors.New("título é obrigatório")
	ErrInvalidPlacement = errors.New("posicionamento inválido")
	ErrListingNotFound  = errors.New("app da campanha não encontrado")
)

// CampaignManager administra os espaços promocionais da vitrine
type CampaignManager interface {
	Create(ctx context.Context, req domain.CreateCampaignRequest) (*domain.PromotionCampaign, error)
	Toggle(ctx context.Context, id string, req domain.ToggleCampaignRequest) (*domain.PromotionCampaign, error)
	Active(ctx context.Context, placement string) ([]*domain.PromotionCampaign, error)
	ByApp(ctx context.Context, appID string) ([]*domain.PromotionCampaign, error)
}

type Service struct {
	promotionRepo repository.PromotionRepository
	listingRepo   repository.ListingRepository
}

func NewService(promotionRepo repository.PromotionRepository, listingRepo repository.ListingRepository) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		listingRepo:   listingRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCampaignRequest) (*domain.PromotionCampaign, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	switch req.Type {
	case domain.CampaignTypeApp:
		if req.AppID == nil || strings.TrimSpace(*req.AppID) == "" {
			return nil, ErrMissingAppID
		}

		listing, err := s.listingRepo.GetByID(ctx, *req.AppID)
		if err != nil {
			return nil, err
		}
		if listing == nil {
			return nil, fmt.Errorf("%w: %s", ErrListingNotFound, *req.AppID)
		}
	case domain.CampaignTypeCompany:
		req.AppID = nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	campaign := &domain.PromotionCampaign{
		ID:          id,
		Title:       title,
		Type:        req.Type,
		AppID:       req.AppID,
		MediaURL:    req.MediaURL,
		ShowHome:    req.ShowHome,
		ShowSearch:  req.ShowSearch,
		ShowAppPage: req.ShowAppPage,
		IsActive:    isActive,
	}

	if err := s.promotionRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// Toggle aplica o valor informado ou inverte o estado atual quando nenhum valor é enviado
func (s *Service) Toggle(ctx context.Context, id string, req domain.ToggleCampaignRequest) (*domain.PromotionCampaign, error) {
	campaign, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}

	active := !campaign.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}

	if err := s.promotionRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
		}
		return nil, err
	}

	campaign.IsActive = active
	return campaign, nil
}

func (s *Service) Active(ctx context.Context, placement string) ([]*domain.PromotionCampaign, error) {
	if placement == "" {
		return s.promotionRepo.ListActive(ctx, nil)
	}

	p := domain.Placement(placement)
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlacement, placement)
	}

	return s.promotionRepo.ListActive(ctx, &p)
}

func (s *Service) ByApp(ctx context.Context, appID string) ([]*domain.PromotionCampaign, error) {
	return s.promotionRepo.ListByApp(ctx, appID)
}
