package onboarding

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/infrastructure/storage"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/pkg/utils"
)

const documentPrefix = "ids"

var (
	ErrDeveloperNotFound   = errors.New("desenvolvedor não encontrado")
	ErrMissingRequiredData = errors.New("nome de desenvolvedor e documento são obrigatórios")
	ErrInvalidDocument     = errors.New("documento de identificação inválido")
	ErrInvalidStatus       = errors.New("status deve ser approved ou rejected")
)

var allowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type Onboarder interface {
	Register(ctx context.Context, app domain.DeveloperApplication) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
	UpdateStatus(ctx context.Context, id string, status domain.DeveloperStatus) (*domain.Developer, error)
}

type Service struct {
	developerRepo repository.DeveloperRepository
	storage       storage.ObjectStorage
	authorizer    authenticating.Authorizer
	bucket        string
	now           func() time.Time
}

func NewService(developerRepo repository.DeveloperRepository, objectStorage storage.ObjectStorage, authorizer authenticating.Authorizer, bucket string) *Service {
	return &Service{
		developerRepo: developerRepo,
		storage:       objectStorage,
		authorizer:    authorizer,
		bucket:        bucket,
		now:           time.Now,
	}
}

// Register envia o documento de identificação e cria o perfil pendente de análise
func (s *Service) Register(ctx context.Context, app domain.DeveloperApplication) (*domain.Developer, error) {
	if strings.TrimSpace(app.DeveloperName) == "" || app.File == nil {
		return nil, ErrMissingRequiredData
	}

	if !allowedDocumentExtensions[strings.ToLower(filepath.Ext(app.FileName))] {
		return nil, fmt.Errorf("%w: extensão não permitida", ErrInvalidDocument)
	}

	key, err := storage.ObjectKey(documentPrefix, app.FileName, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	documentURL, err := s.storage.Upload(ctx, s.bucket, key, app.File, app.Size, app.ContentType)
	if err != nil {
		return nil, fmt.Errorf("erro ao enviar documento: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	developer := &domain.Developer{
		ID:            id,
		UserID:        app.UserID,
		DeveloperName: strings.TrimSpace(app.DeveloperName),
		Bio:           app.Bio,
		Website:       app.Website,
		IDDocumentKey: key,
		IDDocumentURL: documentURL,
		Status:        domain.DeveloperStatusPending,
	}

	if err := s.developerRepo.Create(ctx, developer); err != nil {
		if removeErr := s.storage.Remove(ctx, s.bucket, key); removeErr != nil {
			logrus.WithError(removeErr).Warnf("Documento órfão no storage: %s", key)
		}
		return nil, err
	}

	logrus.Infof("Cadastro de desenvolvedor %s recebido do usuário %d", developer.ID, developer.UserID)

	return developer, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Developer, error) {
	return s.developerRepo.List(ctx)
}

// UpdateStatus aprova ou rejeita o perfil. A aprovação eleva o papel do usuário para developer
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.DeveloperStatus) (*domain.Developer, error) {
	if status != domain.DeveloperStatusApproved && status != domain.DeveloperStatusRejected {
		return nil, ErrInvalidStatus
	}

	if err := s.developerRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDeveloperNotFound, id)
		}
		return nil, err
	}

	developer, err := s.developerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if developer == nil {
		return nil, fmt.Errorf("%w: %s", ErrDeveloperNotFound, id)
	}

	s.authorizer.InvalidateRole(ctx, developer.UserID)

	return developer, nil
}
