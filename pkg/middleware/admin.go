package middleware

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// AdminOnly libera a rota apenas para administradores.
// O perfil vem do Authorizer e não das claims, que podem estar desatualizadas.
func AdminOnly(authorizer authenticating.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso administrativo sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if err := authorizer.RequireAdmin(r.Context(), userClaims.UserID); err != nil {
				code := apiErrors.ErrInsufficientPrivilege
				message := "Você não tem permissão para acessar este recurso"

				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
					if code != apiErrors.ErrInsufficientPrivilege {
						message = "Erro ao verificar permissões"
					}
				}

				logrus.WithError(err).Warningf("Acesso administrativo negado para usuário ID=%d", userClaims.UserID)
				apiErrors.WriteError(w, code, message, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
