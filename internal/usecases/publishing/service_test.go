package publishing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/infrastructure/repository/mocks"
	storagemocks "github.com/vfg2006/app-store-api/infrastructure/storage/mocks"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockListingRepository, *storagemocks.MockObjectStorage) {
	listingRepo := mocks.NewMockListingRepository(ctrl)
	objectStorage := storagemocks.NewMockObjectStorage(ctrl)

	service := NewService(listingRepo, objectStorage, "app-store-files", 1024)
	service.now = func() time.Time { return testNow }

	return service, listingRepo, objectStorage
}

func assertListingErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var listingErr *ListingError
	require.ErrorAs(t, err, &listingErr)
	assert.Equal(t, code, listingErr.Code)
}

func validSubmit() domain.SubmitListingRequest {
	return domain.SubmitListingRequest{
		OwnerID:     7,
		Name:        " Meu App ",
		PackageID:   "com.exemplo.app",
		Version:     "1.0.0",
		FileName:    "meu app.apk",
		ContentType: "application/vnd.android.package-archive",
		Size:        512,
		File:        strings.NewReader("binario"),
	}
}

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name         string
		request      func() domain.SubmitListingRequest
		setupMocks   func(listingRepo *mocks.MockListingRepository, objectStorage *storagemocks.MockObjectStorage)
		expectedCode string
	}{
		{
			name:    "Envio com sucesso",
			request: validSubmit,
			setupMocks: func(listingRepo *mocks.MockListingRepository, objectStorage *storagemocks.MockObjectStorage) {
				expectedKey := "uploads/1741608000000000000_meu_app.apk"
				objectStorage.EXPECT().
					Upload(gomock.Any(), "app-store-files", expectedKey, gomock.Any(), int64(512), "application/vnd.android.package-archive").
					Return("http://files/app-store-files/"+expectedKey, nil)
				listingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, listing *domain.Listing) error {
						assert.NotEmpty(t, listing.ID)
						assert.Equal(t, "Meu App", listing.Name)
						assert.Equal(t, 7, listing.OwnerID)
						assert.Equal(t, domain.ListingStatusPending, listing.Status)
						assert.False(t, listing.Published)
						assert.False(t, listing.Promoted)
						assert.Equal(t, expectedKey, listing.FileKey)
						return nil
					})
			},
		},
		{
			name: "Extensão não permitida",
			request: func() domain.SubmitListingRequest {
				req := validSubmit()
				req.FileName = "app.exe"
				return req
			},
			setupMocks:   func(*mocks.MockListingRepository, *storagemocks.MockObjectStorage) {},
			expectedCode: apiErrors.ErrInvalidFile,
		},
		{
			name: "Arquivo maior que o limite",
			request: func() domain.SubmitListingRequest {
				req := validSubmit()
				req.Size = 2048
				return req
			},
			setupMocks:   func(*mocks.MockListingRepository, *storagemocks.MockObjectStorage) {},
			expectedCode: apiErrors.ErrInvalidFile,
		},
		{
			name: "Sem package_id",
			request: func() domain.SubmitListingRequest {
				req := validSubmit()
				req.PackageID = ""
				return req
			},
			setupMocks:   func(*mocks.MockListingRepository, *storagemocks.MockObjectStorage) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Falha no storage",
			request: validSubmit,
			setupMocks: func(listingRepo *mocks.MockListingRepository, objectStorage *storagemocks.MockObjectStorage) {
				objectStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket indisponível"))
			},
			expectedCode: apiErrors.ErrExternalService,
		},
		{
			name:    "Falha no banco remove o arquivo enviado",
			request: validSubmit,
			setupMocks: func(listingRepo *mocks.MockListingRepository, objectStorage *storagemocks.MockObjectStorage) {
				objectStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("http://files/x.apk", nil)
				listingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("falha"))
				objectStorage.EXPECT().Remove(gomock.Any(), "app-store-files", gomock.Any()).Return(nil)
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, listingRepo, objectStorage := newTestService(ctrl)
			tt.setupMocks(listingRepo, objectStorage)

			listing, err := service.Submit(context.Background(), tt.request())

			if tt.expectedCode != "" {
				assertListingErrorCode(t, err, tt.expectedCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.ListingStatusPending, listing.Status)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, listingRepo, _ := newTestService(ctrl)

	expired := testNow.Add(-time.Hour)
	rank := 3

	listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.Listing{
		ID: "abc", Promoted: true, PromotionExpiresAt: &expired, PromotionRank: &rank,
	}, nil)
	listingRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	listing, err := service.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, listing.Promoted, "promoção expirada não deve ser exibida")
	assert.Nil(t, listing.PromotionRank)

	_, err = service.Get(context.Background(), "missing")
	assertListingErrorCode(t, err, apiErrors.ErrListingNotFound)
}

func TestService_Update(t *testing.T) {
	newName := "Novo Nome"

	tests := []struct {
		name              string
		actor             domain.Actor
		setupMocks        func(listingRepo *mocks.MockListingRepository)
		expectedCode      string
		expectedStatus    domain.ListingStatus
		expectedPublished bool
	}{
		{
			name:  "Edição do dono volta para revisão",
			actor: domain.Actor{UserID: 7},
			setupMocks: func(listingRepo *mocks.MockListingRepository) {
				listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.Listing{
					ID: "abc", OwnerID: 7, Name: "Antigo", Status: domain.ListingStatusApproved, Published: true,
				}, nil)
				listingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus:    domain.ListingStatusPending,
			expectedPublished: false,
		},
		{
			name:  "Edição do administrador mantém a publicação",
			actor: domain.Actor{UserID: 1, IsAdmin: true},
			setupMocks: func(listingRepo *mocks.MockListingRepository) {
				listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.Listing{
					ID: "abc", OwnerID: 7, Status: domain.ListingStatusApproved, Published: true,
				}, nil)
				listingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus:    domain.ListingStatusApproved,
			expectedPublished: true,
		},
		{
			name:  "Outro desenvolvedor não pode editar",
			actor: domain.Actor{UserID: 8},
			setupMocks: func(listingRepo *mocks.MockListingRepository) {
				listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.Listing{ID: "abc", OwnerID: 7}, nil)
			},
			expectedCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:  "App inexistente",
			actor: domain.Actor{UserID: 7},
			setupMocks: func(listingRepo *mocks.MockListingRepository) {
				listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(nil, nil)
			},
			expectedCode: apiErrors.ErrListingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, listingRepo, _ := newTestService(ctrl)
			tt.setupMocks(listingRepo)

			listing, err := service.Update(context.Background(), tt.actor, "abc", domain.UpdateListingRequest{Name: &newName})

			if tt.expectedCode != "" {
				assertListingErrorCode(t, err, tt.expectedCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, newName, listing.Name)
			assert.Equal(t, tt.expectedStatus, listing.Status)
			assert.Equal(t, tt.expectedPublished, listing.Published)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, listingRepo, _ := newTestService(ctrl)

	listingRepo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.Listing{ID: "abc", OwnerID: 7}, nil)
	listingRepo.EXPECT().SoftDelete(gomock.Any(), "abc").Return(nil)

	assert.NoError(t, service.Delete(context.Background(), domain.Actor{UserID: 7}, "abc"))
}

func TestService_ListByDeveloper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, listingRepo, _ := newTestService(ctrl)

	listingRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
			require.NotNil(t, filter.OwnerID)
			assert.Equal(t, 7, *filter.OwnerID)
			return []domain.Listing{{ID: "a"}, {ID: "b"}}, nil
		})

	listings, err := service.ListByDeveloper(context.Background(), domain.Actor{UserID: 7}, 7)
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	_, err = service.ListByDeveloper(context.Background(), domain.Actor{UserID: 8}, 7)
	assertListingErrorCode(t, err, apiErrors.ErrInsufficientPrivilege)
}

func TestService_RegisterDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, listingRepo, _ := newTestService(ctrl)

	listingRepo.EXPECT().IncrementDownloads(gomock.Any(), "abc").Return("http://files/abc.apk", nil)
	listingRepo.EXPECT().IncrementDownloads(gomock.Any(), "zzz").Return("", repository.ErrNotFound)

	url, err := service.RegisterDownload(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "http://files/abc.apk", url)

	_, err = service.RegisterDownload(context.Background(), "zzz")
	assertListingErrorCode(t, err, apiErrors.ErrListingNotFound)
}
