package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/internal/usecases/publishing"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// folga para os demais campos do formulário além do arquivo
const multipartOverhead = 1 << 20

// GetStoreFeed retorna a vitrine pública com os apps promovidos à frente
func GetStoreFeed(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := service.GetStoreFeed(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao montar a vitrine")
			return
		}

		writeJSON(w, http.StatusOK, feed)
	}
}

func GetListing(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		listing, err := service.Get(r.Context(), id)
		if err != nil {
			handleServiceError(w, err, "Erro ao consultar app")
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// SubmitListing recebe o APK/AAB em multipart junto dos metadados do app
func SubmitListing(service publishing.Publisher, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SubmitListing")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFile, "Formulário inválido ou arquivo excede o tamanho máximo", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo do app é obrigatório", nil)
			return
		}
		defer file.Close()

		listing, err := service.Submit(r.Context(), domain.SubmitListingRequest{
			OwnerID:     userClaims.UserID,
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Category:    r.FormValue("category"),
			PackageID:   r.FormValue("package_id"),
			Version:     r.FormValue("version"),
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			File:        file,
		})
		if err != nil {
			handleServiceError(w, err, "Erro ao enviar app")
			return
		}

		writeJSON(w, http.StatusCreated, listing)
	}
}

func UpdateListing(service publishing.Publisher, authorizer authenticating.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateListing")

		actor, ok := resolveActor(w, r, authorizer)
		if !ok {
			return
		}

		var req domain.UpdateListingRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		listing, err := service.Update(r.Context(), actor, id, req)
		if err != nil {
			handleServiceError(w, err, "Erro ao atualizar app")
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

func DeleteListing(service publishing.Publisher, authorizer authenticating.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteListing")

		actor, ok := resolveActor(w, r, authorizer)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), actor, id); err != nil {
			handleServiceError(w, err, "Erro ao remover app")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "App removido com sucesso",
		})
	}
}

func RegisterDownload(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		fileURL, err := service.RegisterDownload(r.Context(), id)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar download")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"file_url": fileURL,
		})
	}
}

// ListDeveloperListings lista os apps de um desenvolvedor, inclusive os ainda em revisão
func ListDeveloperListings(service publishing.Publisher, authorizer authenticating.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		developerID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do desenvolvedor inválido", nil)
			return
		}

		actor, ok := resolveActor(w, r, authorizer)
		if !ok {
			return
		}

		listings, err := service.ListByDeveloper(r.Context(), actor, developerID)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar apps do desenvolvedor")
			return
		}

		writeJSON(w, http.StatusOK, listings)
	}
}
