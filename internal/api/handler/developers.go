package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/onboarding"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// documentos de identificação são pequenos, 10MB é suficiente
const maxDocumentBytes = 10 << 20

// RegisterDeveloper recebe o documento de identificação (id_file) e os dados públicos do desenvolvedor
func RegisterDeveloper(service onboarding.Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterDeveloper")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFile, "Formulário inválido ou documento muito grande", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("id_file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Documento de identificação é obrigatório", nil)
			return
		}
		defer file.Close()

		developer, err := service.Register(r.Context(), domain.DeveloperApplication{
			UserID:        userClaims.UserID,
			DeveloperName: r.FormValue("developer_name"),
			Bio:           r.FormValue("bio"),
			Website:       r.FormValue("website"),
			FileName:      header.Filename,
			ContentType:   header.Header.Get("Content-Type"),
			Size:          header.Size,
			File:          file,
		})
		if err != nil {
			handleServiceError(w, err, "Erro ao cadastrar desenvolvedor")
			return
		}

		writeJSON(w, http.StatusCreated, developer)
	}
}

func ListDevelopers(service onboarding.Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		developers, err := service.List(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar desenvolvedores", nil)
			return
		}

		writeJSON(w, http.StatusOK, developers)
	}
}

func UpdateDeveloperStatus(service onboarding.Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDeveloperStatus")

		var req domain.UpdateDeveloperStatusRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		developer, err := service.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			handleServiceError(w, err, "Erro ao atualizar desenvolvedor")
			return
		}

		writeJSON(w, http.StatusOK, developer)
	}
}
