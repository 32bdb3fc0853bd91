package publishing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/infrastructure/storage"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-api/pkg/utils"
)

const uploadPrefix = "uploads"

var allowedExtensions = map[string]bool{
	".apk": true,
	".aab": true,
}

type Publisher interface {
	Submit(ctx context.Context, req domain.SubmitListingRequest) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Update(ctx context.Context, actor domain.Actor, id string, req domain.UpdateListingRequest) (*domain.Listing, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	ListByDeveloper(ctx context.Context, actor domain.Actor, developerID int) ([]domain.Listing, error)
	RegisterDownload(ctx context.Context, id string) (string, error)
}

type Service struct {
	listingRepo    repository.ListingRepository
	storage        storage.ObjectStorage
	bucket         string
	maxUploadBytes int64
	now            func() time.Time
}

func NewService(listingRepo repository.ListingRepository, objectStorage storage.ObjectStorage, bucket string, maxUploadBytes int64) *Service {
	return &Service{
		listingRepo:    listingRepo,
		storage:        objectStorage,
		bucket:         bucket,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// Submit grava o binário no storage e registra o app como pendente de moderação
func (s *Service) Submit(ctx context.Context, req domain.SubmitListingRequest) (*domain.Listing, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.PackageID) == "" || req.File == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, package_id e arquivo são obrigatórios")
	}

	if err := s.validateFile(req.FileName, req.Size); err != nil {
		return nil, err
	}

	now := s.now()

	key, err := storage.ObjectKey(uploadPrefix, req.FileName, now)
	if err != nil {
		return nil, NewListingError(ErrInvalidFile, apiErrors.ErrInvalidFile, err.Error())
	}

	fileURL, err := s.storage.Upload(ctx, s.bucket, key, req.File, req.Size, req.ContentType)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao enviar arquivo %s", key)
		return nil, NewListingError(err, apiErrors.ErrExternalService, "Falha ao armazenar o arquivo")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrInternalServer, "Falha ao gerar identificador")
	}

	listing := &domain.Listing{
		ID:          id,
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		PackageID:   strings.TrimSpace(req.PackageID),
		Version:     req.Version,
		FileKey:     key,
		FileURL:     fileURL,
		Status:      domain.ListingStatusPending,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		if removeErr := s.storage.Remove(ctx, s.bucket, key); removeErr != nil {
			logrus.WithError(removeErr).Warnf("Arquivo órfão no storage: %s", key)
		}
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao registrar app")
	}

	logrus.Infof("App %s enviado pelo usuário %d", listing.ID, listing.OwnerID)

	return listing, nil
}

func (s *Service) validateFile(fileName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return NewListingError(ErrInvalidFile, apiErrors.ErrInvalidFile, "Apenas arquivos .apk ou .aab são aceitos")
	}

	if size <= 0 {
		return NewListingError(ErrInvalidFile, apiErrors.ErrInvalidFile, "Arquivo vazio")
	}

	if s.maxUploadBytes > 0 && size > s.maxUploadBytes {
		return NewListingError(ErrFileTooLarge, apiErrors.ErrInvalidFile, "Arquivo excede o tamanho máximo permitido")
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar app")
	}

	if listing == nil {
		return nil, NewListingError(ErrListingNotFound, apiErrors.ErrListingNotFound, id)
	}

	view := listing.AsOf(s.now())
	return &view, nil
}

// Update altera os metadados. Edições do próprio desenvolvedor devolvem o app para revisão
func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, req domain.UpdateListingRequest) (*domain.Listing, error) {
	listing, err := s.ownedListing(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome não pode ser vazio")
		}
		listing.Name = strings.TrimSpace(*req.Name)
	}

	if req.Description != nil {
		listing.Description = *req.Description
	}

	if req.Category != nil {
		listing.Category = *req.Category
	}

	if req.Version != nil {
		listing.Version = *req.Version
	}

	if !actor.IsAdmin {
		listing.Status = domain.ListingStatusPending
		listing.Published = false
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewListingError(ErrListingNotFound, apiErrors.ErrListingNotFound, id)
		}
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar app")
	}

	view := listing.AsOf(s.now())
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.ownedListing(ctx, actor, id); err != nil {
		return err
	}

	if err := s.listingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewListingError(ErrListingNotFound, apiErrors.ErrListingNotFound, id)
		}
		return NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao remover app")
	}

	logrus.Infof("App %s removido pelo usuário %d", id, actor.UserID)

	return nil
}

func (s *Service) ownedListing(ctx context.Context, actor domain.Actor, id string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar app")
	}

	if listing == nil {
		return nil, NewListingError(ErrListingNotFound, apiErrors.ErrListingNotFound, id)
	}

	if !actor.IsAdmin && listing.OwnerID != actor.UserID {
		return nil, NewListingError(ErrNotOwner, apiErrors.ErrInsufficientPrivilege, "Apenas o desenvolvedor do app ou um administrador pode alterá-lo")
	}

	return listing, nil
}

func (s *Service) ListByDeveloper(ctx context.Context, actor domain.Actor, developerID int) ([]domain.Listing, error) {
	if !actor.IsAdmin && actor.UserID != developerID {
		return nil, NewListingError(ErrNotOwner, apiErrors.ErrInsufficientPrivilege, "Apenas o próprio desenvolvedor ou um administrador pode listar estes apps")
	}

	listings, err := s.listingRepo.List(ctx, domain.ListingFilter{OwnerID: &developerID})
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar apps")
	}

	now := s.now()
	for i := range listings {
		listings[i] = listings[i].AsOf(now)
	}

	return listings, nil
}

// RegisterDownload incrementa o contador de forma atômica e devolve a URL do arquivo
func (s *Service) RegisterDownload(ctx context.Context, id string) (string, error) {
	fileURL, err := s.listingRepo.IncrementDownloads(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", NewListingError(ErrListingNotFound, apiErrors.ErrListingNotFound, id)
		}
		return "", NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao registrar download")
	}

	return fileURL, nil
}
