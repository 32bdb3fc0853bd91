package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/detecting"
	"github.com/vfg2006/app-store-api/internal/usecases/scanning"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// SubmitVirusScan envia a URL do arquivo ao antivírus; o veredito chega depois pelo agendador
func SubmitVirusScan(service scanning.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SubmitVirusScan")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.VirusScanRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.Submit(r.Context(), userClaims.UserID, req)
		if err != nil {
			handleServiceError(w, err, "Falha ao enviar arquivo para verificação")
			return
		}

		writeJSON(w, http.StatusAccepted, result)
	}
}

func GetVirusScan(service scanning.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		scan, err := service.Get(r.Context(), id)
		if err != nil {
			handleServiceError(w, err, "Erro ao consultar verificação")
			return
		}

		writeJSON(w, http.StatusOK, scan)
	}
}

func CloneCheck(service detecting.CloneDetector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CloneCheckRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.Check(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Erro ao verificar duplicidade")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func LogSecurityEvent(service scanning.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SecurityEventRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		event, err := service.LogEvent(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar evento de segurança")
			return
		}

		writeJSON(w, http.StatusCreated, event)
	}
}

func ListSecurityEvents(service scanning.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := service.ListEvents(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao listar eventos de segurança")
			return
		}

		writeJSON(w, http.StatusOK, events)
	}
}
