package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

type FranchiseHandler struct {
	franchiseService services.FranchiseService
}

func NewFranchiseHandler(fs services.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{franchiseService: fs}
}

// CreateFranchise godoc
// @Summary Создать франшизу
// @Tags franchises
// @Accept json
// @Produce json
// @Param body body services.CreateFranchiseInput true "Данные франшизы"
// @Success 201 {object} models.Franchise
// @Failure 409 {object} map[string]string "Название или код уже заняты"
// @Router /franchises [post]
func (h *FranchiseHandler) CreateFranchise(w http.ResponseWriter, r *http.Request) {
	var input services.CreateFranchiseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	franchise, err := h.franchiseService.CreateFranchise(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, franchise)
}

// ListFranchises godoc
// @Summary Список франшиз
// @Tags franchises
// @Produce json
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.Franchise
// @Router /franchises [get]
func (h *FranchiseHandler) ListFranchises(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	franchises, err := h.franchiseService.ListFranchises(r.Context(), page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, franchises)
}

// GetFranchise godoc
// @Summary Получить франшизу
// @Tags franchises
// @Produce json
// @Param franchiseID path int true "Franchise ID"
// @Success 200 {object} models.Franchise
// @Failure 404 {object} map[string]string
// @Router /franchises/{franchiseID} [get]
func (h *FranchiseHandler) GetFranchise(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "franchiseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	franchise, err := h.franchiseService.GetFranchiseByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, franchise)
}

// UpdateFranchise godoc
// @Summary Частично обновить франшизу
// @Tags franchises
// @Accept json
// @Produce json
// @Param franchiseID path int true "Franchise ID"
// @Param body body services.UpdateFranchiseInput true "Изменяемые поля"
// @Success 200 {object} models.Franchise
// @Failure 404 {object} map[string]string
// @Router /franchises/{franchiseID} [put]
func (h *FranchiseHandler) UpdateFranchise(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "franchiseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateFranchiseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	franchise, err := h.franchiseService.UpdateFranchise(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, franchise)
}

// DeleteFranchise godoc
// @Summary Удалить франшизу
// @Tags franchises
// @Produce json
// @Param franchiseID path int true "Franchise ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Франшиза используется"
// @Router /franchises/{franchiseID} [delete]
func (h *FranchiseHandler) DeleteFranchise(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "franchiseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.franchiseService.DeleteFranchise(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Franchise")
}

// UploadFranchiseLogo godoc
// @Summary Загрузить логотип франшизы
// @Tags franchises
// @Accept multipart/form-data
// @Produce json
// @Param franchiseID path int true "Franchise ID"
// @Param file formData file true "Логотип"
// @Success 200 {object} models.Franchise
// @Router /franchises/{franchiseID}/logo [post]
func (h *FranchiseHandler) UploadFranchiseLogo(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "franchiseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upload, file, err := readImageUpload(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	franchise, err := h.franchiseService.UploadFranchiseLogo(r.Context(), id, upload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, franchise)
}
