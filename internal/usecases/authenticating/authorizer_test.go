package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/app-store-api/infrastructure/cache/mocks"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRoleAuthorizer_RequireAdmin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		setupMocks   func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache)
		expectedErr  error
		expectedCode string
	}{
		{
			name: "Administrador vindo do cache não consulta a base",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.RoleAdmin, true, nil)
			},
		},
		{
			name: "Administrador consultado na base é gravado no cache",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.Role(""), false, nil)
				userRepo.EXPECT().GetUserRole(gomock.Any(), 1).Return(domain.RoleAdmin, nil)
				roleCache.EXPECT().SetRole(gomock.Any(), 1, domain.RoleAdmin, 30*time.Second).Return(nil)
			},
		},
		{
			name: "Administrador rebaixado perde acesso",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.Role(""), false, nil)
				userRepo.EXPECT().GetUserRole(gomock.Any(), 1).Return(domain.RoleDeveloper, nil)
				roleCache.EXPECT().SetRole(gomock.Any(), 1, domain.RoleDeveloper, gomock.Any()).Return(nil)
			},
			expectedErr:  ErrInsufficientPrivilege,
			expectedCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name: "Falha no cache recorre à base",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.Role(""), false, errors.New("redis fora do ar"))
				userRepo.EXPECT().GetUserRole(gomock.Any(), 1).Return(domain.RoleAdmin, nil)
				roleCache.EXPECT().SetRole(gomock.Any(), 1, domain.RoleAdmin, gomock.Any()).Return(errors.New("redis fora do ar"))
			},
		},
		{
			name: "Usuário inexistente",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.Role(""), false, nil)
				userRepo.EXPECT().GetUserRole(gomock.Any(), 1).Return(domain.Role(""), repository.ErrNotFound)
			},
			expectedErr:  ErrInsufficientPrivilege,
			expectedCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name: "Erro de banco",
			setupMocks: func(userRepo *mocks.MockUserRepository, roleCache *cachemocks.MockRoleCache) {
				roleCache.EXPECT().GetRole(gomock.Any(), 1).Return(domain.Role(""), false, nil)
				userRepo.EXPECT().GetUserRole(gomock.Any(), 1).Return(domain.Role(""), errors.New("conexão recusada"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			roleCache := cachemocks.NewMockRoleCache(ctrl)
			tt.setupMocks(userRepo, roleCache)

			authorizer := NewAuthorizer(userRepo, roleCache, 30*time.Second)

			err := authorizer.RequireAdmin(ctx, 1)

			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestRoleAuthorizer_SemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserRole(gomock.Any(), 7).Return(domain.RoleAdmin, nil).Times(2)

	authorizer := NewAuthorizer(userRepo, nil, time.Minute)

	assert.NoError(t, authorizer.RequireAdmin(context.Background(), 7))
	assert.NoError(t, authorizer.RequireAdmin(context.Background(), 7))

	authorizer.InvalidateRole(context.Background(), 7)
}

func TestRoleAuthorizer_InvalidateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roleCache := cachemocks.NewMockRoleCache(ctrl)
	roleCache.EXPECT().DeleteRole(gomock.Any(), 4).Return(nil)

	authorizer := NewAuthorizer(mocks.NewMockUserRepository(ctrl), roleCache, time.Minute)

	authorizer.InvalidateRole(context.Background(), 4)
}
