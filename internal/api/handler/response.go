package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/assisting"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/internal/usecases/detecting"
	"github.com/vfg2006/app-store-api/internal/usecases/moderating"
	"github.com/vfg2006/app-store-api/internal/usecases/onboarding"
	"github.com/vfg2006/app-store-api/internal/usecases/promoting"
	"github.com/vfg2006/app-store-api/internal/usecases/publishing"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
	"github.com/vfg2006/app-store-api/internal/usecases/scanning"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody decodifica o corpo JSON. Corpo vazio é aceito e mantém os valores padrão
func decodeBody(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// currentUser lê as claims gravadas pelo middleware de autenticação
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// resolveActor monta o Actor com o perfil atual do usuário, consultado no Authorizer
func resolveActor(w http.ResponseWriter, r *http.Request, authorizer authenticating.Authorizer) (domain.Actor, bool) {
	claims, ok := currentUser(w, r)
	if !ok {
		return domain.Actor{}, false
	}

	role, err := authorizer.CurrentRole(r.Context(), claims.UserID)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao consultar perfil do usuário %d", claims.UserID)
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não foi possível verificar o perfil do usuário", nil)
		return domain.Actor{}, false
	}

	return domain.Actor{UserID: claims.UserID, IsAdmin: role == domain.RoleAdmin}, true
}

// handleServiceError traduz os erros dos casos de uso para a resposta padronizada da API
func handleServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		writeCodedError(w, err, authErr.Code, fallbackMessage)
		return
	}

	var listingErr *publishing.ListingError
	if errors.As(err, &listingErr) {
		writeCodedError(w, err, listingErr.Code, fallbackMessage)
		return
	}

	switch {
	case errors.Is(err, moderating.ErrListingNotFound),
		errors.Is(err, promoting.ErrListingNotFound):
		apiErrors.WriteError(w, apiErrors.ErrListingNotFound, err.Error(), nil)

	case errors.Is(err, promoting.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, err.Error(), nil)

	case errors.Is(err, onboarding.ErrDeveloperNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDeveloperNotFound, err.Error(), nil)

	case errors.Is(err, scanning.ErrScanNotFound):
		apiErrors.WriteError(w, apiErrors.ErrScanNotFound, err.Error(), nil)

	case errors.Is(err, onboarding.ErrInvalidDocument):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFile, err.Error(), nil)

	case errors.Is(err, promoting.ErrMissingAppID),
		errors.Is(err, promoting.ErrMissingTitle),
		errors.Is(err, onboarding.ErrMissingRequiredData),
		errors.Is(err, assisting.ErrMissingAppName),
		errors.Is(err, assisting.ErrMissingErrorMessage),
		errors.Is(err, scanning.ErrMissingFileURL),
		errors.Is(err, detecting.ErrMissingCriteria),
		errors.Is(err, moderating.ErrMissingReason):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, moderating.ErrInvalidDays),
		errors.Is(err, moderating.ErrInvalidRank),
		errors.Is(err, moderating.ErrInvalidStatus),
		errors.Is(err, promoting.ErrInvalidType),
		errors.Is(err, promoting.ErrInvalidPlacement),
		errors.Is(err, onboarding.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, assisting.ErrUpstream),
		errors.Is(err, scanning.ErrUpstream):
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fallbackMessage, nil)

	case errors.Is(err, ranking.ErrInvalidInput):
		logrus.WithError(err).Error("Dados inconsistentes retornados pelo banco")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)

	default:
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

// writeCodedError não expõe detalhes internos quando o código corresponde a um erro 5xx
func writeCodedError(w http.ResponseWriter, err error, code, fallbackMessage string) {
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, code, fallbackMessage, nil)
		return
	}
	apiErrors.WriteError(w, code, err.Error(), nil)
}
