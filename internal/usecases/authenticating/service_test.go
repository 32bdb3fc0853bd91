package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAuthConfig = config.Auth{
	Secret:   "segredo-de-teste",
	TokenTTL: time.Hour,
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		request      domain.SignupRequest
		setupMocks   func(userRepo *mocks.MockUserRepository)
		expectedCode string
	}{
		{
			name:    "Cadastro com sucesso normaliza o email",
			request: domain.SignupRequest{Name: "Ana", Email: "  Ana@Example.COM ", Password: "Senha@123"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "ana@example.com", user.Email)
						assert.Equal(t, domain.RoleUser, user.Role)
						assert.True(t, user.Active)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
						user.ID = 10
						return user, nil
					})
			},
		},
		{
			name:         "Dados obrigatórios ausentes",
			request:      domain.SignupRequest{Email: "ana@example.com"},
			setupMocks:   func(userRepo *mocks.MockUserRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Senha fraca",
			request:      domain.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "senha"},
			setupMocks:   func(userRepo *mocks.MockUserRepository) {},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Email duplicado",
			request: domain.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "Senha@123"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name:    "Erro ao criar usuário",
			request: domain.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "Senha@123"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("falha"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(userRepo)

			service := NewService(userRepo, testAuthConfig)

			user, err := service.Signup(ctx, tt.request)

			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, 10, user.ID)
				assert.Empty(t, user.PasswordHash)
				return
			}

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		email        string
		password     string
		setupMocks   func(t *testing.T, userRepo *mocks.MockUserRepository)
		expectedCode string
	}{
		{
			name:     "Login com sucesso",
			email:    "admin@example.com",
			password: "Senha@123",
			setupMocks: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{
					ID: 1, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, Active: true,
					PasswordHash: hashPassword(t, "Senha@123"),
				}, nil)
			},
		},
		{
			name:         "Campos vazios",
			setupMocks:   func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "x@example.com",
			password: "Senha@123",
			setupMocks: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "x@example.com").Return(nil, nil)
			},
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "x@example.com",
			password: "Senha@123",
			setupMocks: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 2, Active: false}, nil)
			},
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "x@example.com",
			password: "Errada@123",
			setupMocks: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&domain.User{
					ID: 2, Active: true, PasswordHash: hashPassword(t, "Senha@123"),
				}, nil)
			},
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(t, userRepo)

			service := NewService(userRepo, testAuthConfig)

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			if tt.expectedCode != "" {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				return
			}

			require.NoError(t, err)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, domain.RoleAdmin, claims.UserRole)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, testAuthConfig)

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { service.now = time.Now }()

		token, err := service.generateJWT(&domain.User{ID: 1, Role: domain.RoleUser})
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinatura de outro segredo", func(t *testing.T) {
		other := NewService(nil, config.Auth{Secret: "outro", TokenTTL: time.Hour})
		token, err := other.generateJWT(&domain.User{ID: 1})
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(gomock.Any(), 3).Return(&domain.User{ID: 3, PasswordHash: "hash"}, nil)
	userRepo.EXPECT().GetUserByID(gomock.Any(), 4).Return(nil, nil)

	service := NewService(userRepo, testAuthConfig)

	user, err := service.GetUserProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = service.GetUserProfile(context.Background(), 4)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		password string
		valid    bool
	}{
		{"Curta@1", false},
		{"semmaiuscula@1", false},
		{"SEMMINUSCULA@1", false},
		{"SemNumero@", false},
		{"SemEspecial1", false},
		{"Valida@123", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
