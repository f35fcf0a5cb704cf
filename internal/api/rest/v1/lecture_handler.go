package v1

import (
	"fmt"
	"net/http"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// LectureHandler defines the interface for handling lecture catalog operations
type LectureHandler interface {
	List(ctx *gin.Context)
	Scan(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Render(ctx *gin.Context)
}

// lectureHandler struct holds the services
type lectureHandler struct {
	catalogService lectures.CatalogService
	renderService  lectures.RenderService
}

// NewLectureHandler creates a new LectureHandler
func NewLectureHandler(catalogService lectures.CatalogService, renderService lectures.RenderService) LectureHandler {
	return &lectureHandler{
		catalogService: catalogService,
		renderService:  renderService,
	}
}

// List handles the GET request to list lecture catalog entries
// @Summary List lecture catalog entries based on query parameters
// @Description Fetch catalog entries filtered by name, speaker and status, with pagination and sorting options.
// @Tags Lecture
// @Accept json
// @Produce json
// @Param name query string false "Lecture folder name filter (substring)"
// @Param speaker query string false "Speaker filter"
// @Param status query string false "Processing status filter"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} LectureMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /lectures [get]
func (handler *lectureHandler) List(ctx *gin.Context) {
	query := lectures.NewLectureMetaQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}
	if speaker := ctx.Query("speaker"); len(speaker) > 0 {
		query.Speaker = speaker
	}
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid query parameters: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	lectureMetas, err := handler.catalogService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing lectures: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	listResponse := []LectureMetaResponse{}
	for _, lectureMeta := range lectureMetas {
		listResponse = append(listResponse, toLectureMetaResponse(lectureMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Scan handles the POST request to rescan the data directory
// @Summary Rescan the data directory and register new lecture folders
// @Description Walk the data directory, register unseen lecture folders in the catalog and return the catalog state.
// @Tags Lecture
// @Accept json
// @Produce json
// @Success 200 {array} LectureMetaResponse
// @Failure 500 {object} ErrorResponse
// @Router /lectures/scan [post]
func (handler *lectureHandler) Scan(ctx *gin.Context) {
	lectureMetas, err := handler.catalogService.Refresh(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error scanning data directory: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	listResponse := []LectureMetaResponse{}
	for _, lectureMeta := range lectureMetas {
		listResponse = append(listResponse, toLectureMetaResponse(lectureMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch one catalog entry
// @Summary Get a lecture catalog entry by ID
// @Description Fetch the catalog entry of a lecture by its ID.
// @Tags Lecture
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} LectureMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id} [get]
func (handler *lectureHandler) GetByID(ctx *gin.Context) {
	lectureID := ctx.Param("id")

	lectureMeta, err := handler.catalogService.GetByID(ctx, lectureID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("lecture not found: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	response := toLectureMetaResponse(lectureMeta)
	ctx.JSON(http.StatusOK, response)
}

// DeleteByID handles the DELETE request to remove a catalog entry
// @Summary Delete a lecture catalog entry by ID
// @Description Remove the catalog entry and its artifact index. Files on disk are untouched.
// @Tags Lecture
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id} [delete]
func (handler *lectureHandler) DeleteByID(ctx *gin.Context) {
	lectureID := ctx.Param("id")

	if err := handler.catalogService.DeleteByID(ctx, lectureID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting lecture: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("lecture with id %s deleted successfully", lectureID)
	ctx.JSON(http.StatusOK, infoResponse)
}

// Render handles the POST request to re-render the note documents
// @Summary Re-render the markdown and HTML notes of a lecture
// @Description Rebuild the note documents from the stored summary, picking up editor changes.
// @Tags Lecture
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} RenderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/render [post]
func (handler *lectureHandler) Render(ctx *gin.Context) {
	lectureID := ctx.Param("id")

	lectureMeta, err := handler.catalogService.GetByID(ctx, lectureID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("lecture not found: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	markdownPath, htmlPath, err := handler.renderService.Render(ctx, lectureMeta.Name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error rendering notes: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	response := RenderResponse{MarkdownPath: markdownPath, HTMLPath: htmlPath}
	ctx.JSON(http.StatusOK, response)
}

func toLectureMetaResponse(meta *lectures.LectureMeta) LectureMetaResponse {
	return LectureMetaResponse{
		ID:                 meta.ID,
		Name:               meta.Name,
		Speaker:            meta.Speaker,
		Topic:              meta.Topic,
		Date:               meta.Date,
		SlideCount:         meta.SlideCount,
		TranscriptDuration: meta.TranscriptDuration,
		Status:             meta.Status,
		DateTimeCreated:    meta.DateTimeCreated,
		DateTimeUpdated:    meta.DateTimeUpdated,
	}
}
