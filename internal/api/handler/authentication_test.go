package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	t.Run("conta criada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Signup(gomock.Any(), domain.SignupRequest{Name: "Ana", Email: "ana@exemplo.com", Password: "Senha@123"}).
			Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@exemplo.com", Role: domain.RoleUser, Active: true}, nil)

		rec := serve(t, Authentication(service, authmocks.NewMockAuthorizer(ctrl)), http.MethodPost, "/v1/auth/signup",
			jsonBody(`{"name":"Ana","email":"ana@exemplo.com","password":"Senha@123"}`), nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.RoleUser, decodeResponse[domain.User](t, rec).Role)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "ana@exemplo.com"))

		rec := serve(t, Authentication(service, authmocks.NewMockAuthorizer(ctrl)), http.MethodPost, "/v1/auth/signup",
			jsonBody(`{"name":"Ana","email":"ana@exemplo.com","password":"Senha@123"}`), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, decodeAPIError(t, rec).Code)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(service *authmocks.MockAuthenticator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "token emitido",
			body: `{"email":"ana@exemplo.com","password":"Senha@123"}`,
			setupMock: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().LoginUser(gomock.Any(), "ana@exemplo.com", "Senha@123").Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "credenciais inválidas",
			body: `{"email":"ana@exemplo.com","password":"errada"}`,
			setupMock: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().LoginUser(gomock.Any(), "ana@exemplo.com", "errada").
					Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidCredentials,
		},
		{
			name: "usuário desativado",
			body: `{"email":"ana@exemplo.com","password":"Senha@123"}`,
			setupMock: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 7, ""))
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  apiErrors.ErrUserDisabled,
		},
		{
			name: "falha inesperada",
			body: `{"email":"ana@exemplo.com","password":"Senha@123"}`,
			setupMock: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrInternalServer,
		},
		{
			name:         "corpo inválido",
			body:         `{"email":1}`,
			setupMock:    func(service *authmocks.MockAuthenticator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setupMock(service)

			rec := serve(t, Authentication(service, authmocks.NewMockAuthorizer(ctrl)), http.MethodPost, "/v1/auth/login", jsonBody(tt.body), nil)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, rec).Code)
				return
			}
			assert.Equal(t, "jwt-token", decodeResponse[map[string]string](t, rec)["token"])
		})
	}
}

func TestLogin_DisabledUserDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 7, ""))

	rec := serve(t, Authentication(service, authmocks.NewMockAuthorizer(ctrl)), http.MethodPost, "/v1/auth/login",
		jsonBody(`{"email":"ana@exemplo.com","password":"Senha@123"}`), nil)

	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, map[string]any{"user_id": float64(7)}, apiErr.Details)
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7, Name: "Ana", Role: domain.RoleDeveloper}, nil)

	rec := serve(t, Authentication(service, authmocks.NewMockAuthorizer(ctrl)), http.MethodGet, "/v1/auth/me", nil, userClaims(7))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleDeveloper, decodeResponse[domain.User](t, rec).Role)
}

func TestListUsers(t *testing.T) {
	t.Run("administrador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)
		authorizer := authmocks.NewMockAuthorizer(ctrl)

		authorizer.EXPECT().RequireAdmin(gomock.Any(), 1).Return(nil)
		service.EXPECT().ListUsers(gomock.Any()).Return([]*domain.User{{ID: 1}, {ID: 7}}, nil)

		rec := serve(t, Authentication(service, authorizer), http.MethodGet, "/v1/admin/users", nil, adminClaims())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeResponse[[]domain.User](t, rec), 2)
	})

	t.Run("usuário comum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)
		authorizer := authmocks.NewMockAuthorizer(ctrl)

		authorizer.EXPECT().RequireAdmin(gomock.Any(), 7).
			Return(authenticating.NewUserAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, 7, ""))

		rec := serve(t, Authentication(service, authorizer), http.MethodGet, "/v1/admin/users", nil, userClaims(7))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
