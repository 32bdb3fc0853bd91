package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/app-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-store-api/internal/domain"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("cria o usuário e concede o perfil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)
		authenticator := authmocks.NewMockAuthenticator(ctrl)

		userRepo.EXPECT().GetUserByEmail(ctx, "admin@loja.com").Return(nil, nil)
		authenticator.EXPECT().Signup(ctx, domain.SignupRequest{Name: "Administrador", Email: "admin@loja.com", Password: "Senha@123"}).
			Return(&domain.User{ID: 1, Role: domain.RoleUser}, nil)
		userRepo.EXPECT().UpdateRole(ctx, 1, domain.RoleAdmin).Return(nil)

		require.NoError(t, seedAdmin(ctx, userRepo, authenticator, "admin@loja.com", "Senha@123"))
	})

	t.Run("promove usuário existente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(&domain.User{ID: 7, Role: domain.RoleDeveloper}, nil)
		userRepo.EXPECT().UpdateRole(ctx, 7, domain.RoleAdmin).Return(nil)

		require.NoError(t, seedAdmin(ctx, userRepo, authmocks.NewMockAuthenticator(ctrl), "ana@loja.com", "x"))
	})

	t.Run("administrador já existente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail(ctx, "admin@loja.com").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		assert.NoError(t, seedAdmin(ctx, userRepo, authmocks.NewMockAuthenticator(ctrl), "admin@loja.com", "x"))
	})
}
