package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/assisting"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// GenerateMetadata pede à IA descrição, tags e resumo de privacidade para o app
func GenerateMetadata(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateMetadata")

		var req domain.AIMetadataRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		metadata, err := service.GenerateMetadata(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Falha ao gerar metadados com IA")
			return
		}

		writeJSON(w, http.StatusOK, metadata)
	}
}

func SupportChatbot(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SupportChatbot")

		var req domain.ChatbotRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		reply, err := service.Explain(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Falha ao consultar o assistente")
			return
		}

		writeJSON(w, http.StatusOK, reply)
	}
}
