package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(gs services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

// UploadItem godoc
// @Summary Загрузить фото в галерею
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение"
// @Param title formData string false "Заголовок"
// @Param description formData string false "Описание"
// @Param match_id formData int false "Матч"
// @Success 201 {object} models.GalleryItem
// @Failure 422 {object} map[string]string
// @Router /gallery [post]
func (h *GalleryHandler) UploadItem(w http.ResponseWriter, r *http.Request) {
	upload, file, err := readImageUpload(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	matchID, err := formInt(r, "match_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.galleryService.UploadItem(r.Context(), services.CreateGalleryItemInput{
		Title:       formString(r, "title"),
		Description: formString(r, "description"),
		MatchID:     matchID,
		Image:       upload,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, item)
}

// ListItems godoc
// @Summary Галерея
// @Tags gallery
// @Produce json
// @Param match_id query int false "Фильтр по матчу"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func (h *GalleryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := queryInt(r, "match_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	items, err := h.galleryService.ListItems(r.Context(), matchID, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, items)
}

// GetItem godoc
// @Summary Получить фото галереи
// @Tags gallery
// @Produce json
// @Param galleryID path int true "Gallery item ID"
// @Success 200 {object} models.GalleryItem
// @Failure 404 {object} map[string]string
// @Router /gallery/{galleryID} [get]
func (h *GalleryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "galleryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.galleryService.GetItemByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Удалить фото галереи
// @Tags gallery
// @Produce json
// @Param galleryID path int true "Gallery item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gallery/{galleryID} [delete]
func (h *GalleryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "galleryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.galleryService.DeleteItem(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Gallery item")
}

// ListStoredImages godoc
// @Summary Файлы галереи в хранилище
// @Tags gallery
// @Produce json
// @Success 200 {array} string
// @Router /s3-gallery [get]
func (h *GalleryHandler) ListStoredImages(w http.ResponseWriter, r *http.Request) {
	locators, err := h.galleryService.ListStoredImages(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, locators)
}
