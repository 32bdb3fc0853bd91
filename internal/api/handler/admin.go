package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/insighting"
	"github.com/vfg2006/app-store-api/internal/usecases/moderating"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

type moderationAction func(m moderating.Moderator, r *http.Request, id string) error

// ListListingsByStatus lista os apps para moderação, opcionalmente filtrados por ?status=
func ListListingsByStatus(service moderating.Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *domain.ListingStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			s := domain.ListingStatus(raw)
			if !s.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: pending, approved, rejected", nil)
				return
			}
			status = &s
		}

		listings, err := service.ListByStatus(r.Context(), status)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar apps")
			return
		}

		writeJSON(w, http.StatusOK, listings)
	}
}

func moderate(service moderating.Moderator, name, message string, action moderationAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - " + name)

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := action(service, r, id); err != nil {
			handleServiceError(w, err, "Erro ao moderar app")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"id":      id,
			"message": message,
		})
	}
}

func ApproveListing(service moderating.Moderator) http.HandlerFunc {
	return moderate(service, "ApproveListing", "App aprovado e publicado", func(m moderating.Moderator, r *http.Request, id string) error {
		return m.Approve(r.Context(), id)
	})
}

func RejectListing(service moderating.Moderator) http.HandlerFunc {
	return moderate(service, "RejectListing", "App rejeitado", func(m moderating.Moderator, r *http.Request, id string) error {
		var req domain.RejectListingRequest
		if err := decodeBody(r, &req); err != nil {
			return moderating.ErrMissingReason
		}
		return m.Reject(r.Context(), id, req.Reason)
	})
}

func PublishListing(service moderating.Moderator) http.HandlerFunc {
	return moderate(service, "PublishListing", "App publicado", func(m moderating.Moderator, r *http.Request, id string) error {
		return m.Publish(r.Context(), id)
	})
}

func UnpublishListing(service moderating.Moderator) http.HandlerFunc {
	return moderate(service, "UnpublishListing", "App despublicado", func(m moderating.Moderator, r *http.Request, id string) error {
		return m.Unpublish(r.Context(), id)
	})
}

// PromoteListing destaca o app por {days} dias com a prioridade {rank}
func PromoteListing(service moderating.Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PromoteListing")

		var req domain.PromoteListingRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		expiresAt, err := service.Promote(r.Context(), id, req.Days, req.Rank)
		if err != nil {
			handleServiceError(w, err, "Erro ao promover app")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":                   id,
			"promoted":             true,
			"promotion_expires_at": expiresAt,
			"promotion_rank":       req.Rank,
		})
	}
}

func UnpromoteListing(service moderating.Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UnpromoteListing")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Unpromote(r.Context(), id); err != nil {
			handleServiceError(w, err, "Erro ao remover promoção")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":       id,
			"promoted": false,
		})
	}
}

func GetAdminStats(service insighting.StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar estatísticas", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// GetAdminDashboard retorna os apps enviados mais recentemente
func GetAdminDashboard(service insighting.StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := service.Dashboard(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"latest_apps": latest,
		})
	}
}
