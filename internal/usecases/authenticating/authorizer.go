package authenticating

//go:generate mockgen -source=authorizer.go -destination=mocks/authorizer.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/cache"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// Authorizer concentra a verificação de capacidade administrativa.
// O perfil é sempre consultado na base (ou no cache de curta duração), nunca lido do token,
// para que um administrador rebaixado perca o acesso antes do token expirar.
type Authorizer interface {
	RequireAdmin(ctx context.Context, userID int) error
	CurrentRole(ctx context.Context, userID int) (domain.Role, error)
	InvalidateRole(ctx context.Context, userID int)
}

type RoleAuthorizer struct {
	userRepo repository.UserRepository
	cache    cache.RoleCache
	cacheTTL time.Duration
}

// NewAuthorizer cria o verificador de perfis. roleCache pode ser nil quando o Redis estiver desabilitado
func NewAuthorizer(userRepo repository.UserRepository, roleCache cache.RoleCache, cacheTTL time.Duration) *RoleAuthorizer {
	return &RoleAuthorizer{
		userRepo: userRepo,
		cache:    roleCache,
		cacheTTL: cacheTTL,
	}
}

func (a *RoleAuthorizer) RequireAdmin(ctx context.Context, userID int) error {
	role, err := a.CurrentRole(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, userID, "Usuário inexistente ou desativado")
		}
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar perfil do usuário")
	}

	if role != domain.RoleAdmin {
		return NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, userID, "Acesso restrito a administradores")
	}

	return nil
}

func (a *RoleAuthorizer) CurrentRole(ctx context.Context, userID int) (domain.Role, error) {
	if a.cache != nil {
		role, found, err := a.cache.GetRole(ctx, userID)
		if err != nil {
			logrus.WithError(err).Warnf("Falha ao ler perfil do usuário %d no cache", userID)
		} else if found {
			return role, nil
		}
	}

	role, err := a.userRepo.GetUserRole(ctx, userID)
	if err != nil {
		return "", err
	}

	if a.cache != nil {
		if err := a.cache.SetRole(ctx, userID, role, a.cacheTTL); err != nil {
			logrus.WithError(err).Warnf("Falha ao gravar perfil do usuário %d no cache", userID)
		}
	}

	return role, nil
}

// InvalidateRole descarta o perfil em cache após uma mudança de papel
func (a *RoleAuthorizer) InvalidateRole(ctx context.Context, userID int) {
	if a.cache == nil {
		return
	}

	if err := a.cache.DeleteRole(ctx, userID); err != nil {
		logrus.WithError(err).Warnf("Falha ao invalidar perfil do usuário %d no cache", userID)
	}
}
