package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/insighting"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// GetLatestInsight devolve o retrato mais recente, ou {} quando ainda não há nenhum
func GetLatestInsight(service insighting.SnapshotRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insight, err := service.Latest(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar insights", nil)
			return
		}

		if insight == nil {
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}

func RecordInsight(service insighting.SnapshotRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordInsight")

		var req domain.RecordInsightRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		insight, err := service.Record(r.Context(), req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar insight", nil)
			return
		}

		writeJSON(w, http.StatusCreated, insight)
	}
}
