package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/domain"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/app-store-api/internal/usecases/onboarding"
	onboardingmocks "github.com/vfg2006/app-store-api/internal/usecases/onboarding/mocks"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRegisterDeveloper(t *testing.T) {
	t.Run("cadastro pendente de análise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := onboardingmocks.NewMockOnboarder(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app domain.DeveloperApplication) (*domain.Developer, error) {
				assert.Equal(t, 7, app.UserID)
				assert.Equal(t, "Estúdio Exemplo", app.DeveloperName)
				assert.Equal(t, "rg.pdf", app.FileName)
				return &domain.Developer{ID: "d1", UserID: 7, Status: domain.DeveloperStatusPending}, nil
			})

		body, contentType := multipartBody(t, map[string]string{
			"developer_name": "Estúdio Exemplo",
			"website":        "https://exemplo.dev",
		}, "id_file", "rg.pdf", []byte("%PDF-1.4"))

		rec := serveWithContentType(t, Developers(service, authmocks.NewMockAuthorizer(ctrl)),
			http.MethodPost, "/v1/developers", body, contentType, userClaims(7))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.DeveloperStatusPending, decodeResponse[domain.Developer](t, rec).Status)
	})

	t.Run("sem documento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := onboardingmocks.NewMockOnboarder(ctrl)

		body, contentType := multipartBody(t, map[string]string{"developer_name": "Estúdio"}, "", "", nil)

		rec := serveWithContentType(t, Developers(service, authmocks.NewMockAuthorizer(ctrl)),
			http.MethodPost, "/v1/developers", body, contentType, userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("documento com extensão recusada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := onboardingmocks.NewMockOnboarder(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, onboarding.ErrInvalidDocument)

		body, contentType := multipartBody(t, map[string]string{"developer_name": "Estúdio"}, "id_file", "rg.exe", []byte("MZ"))

		rec := serveWithContentType(t, Developers(service, authmocks.NewMockAuthorizer(ctrl)),
			http.MethodPost, "/v1/developers", body, contentType, userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFile, decodeAPIError(t, rec).Code)
	})
}

func TestListDevelopers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := onboardingmocks.NewMockOnboarder(ctrl)
	authorizer := authmocks.NewMockAuthorizer(ctrl)

	authorizer.EXPECT().RequireAdmin(gomock.Any(), 1).Return(nil)
	service.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	rec := serve(t, Developers(service, authorizer), http.MethodGet, "/v1/admin/developers", nil, adminClaims())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
}

func TestUpdateDeveloperStatus(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(service *onboardingmocks.MockOnboarder)
		expectedCode int
	}{
		{
			name: "aprovado",
			body: `{"status":"approved"}`,
			setupMock: func(service *onboardingmocks.MockOnboarder) {
				service.EXPECT().UpdateStatus(gomock.Any(), "d1", domain.DeveloperStatusApproved).
					Return(&domain.Developer{ID: "d1", Status: domain.DeveloperStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "status inválido",
			body: `{"status":"pending"}`,
			setupMock: func(service *onboardingmocks.MockOnboarder) {
				service.EXPECT().UpdateStatus(gomock.Any(), "d1", domain.DeveloperStatusPending).
					Return(nil, onboarding.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "desenvolvedor inexistente",
			body: `{"status":"rejected"}`,
			setupMock: func(service *onboardingmocks.MockOnboarder) {
				service.EXPECT().UpdateStatus(gomock.Any(), "d1", domain.DeveloperStatusRejected).
					Return(nil, onboarding.ErrDeveloperNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := onboardingmocks.NewMockOnboarder(ctrl)
			authorizer := authmocks.NewMockAuthorizer(ctrl)

			authorizer.EXPECT().RequireAdmin(gomock.Any(), 1).Return(nil)
			tt.setupMock(service)

			rec := serve(t, Developers(service, authorizer), http.MethodPost, "/v1/admin/developers/d1/status", jsonBody(tt.body), adminClaims())

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
