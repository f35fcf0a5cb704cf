package v1

import (
	"fmt"
	"net/http"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// SummaryHandler defines the interface for handling summary editing operations
type SummaryHandler interface {
	GetSummary(ctx *gin.Context)
	UpdateSlideKeyPoints(ctx *gin.Context)
	UpdateQA(ctx *gin.Context)
	UpdateTakeaways(ctx *gin.Context)
	GetSlideImage(ctx *gin.Context)
}

// summaryHandler struct holds the services
type summaryHandler struct {
	catalogService lectures.CatalogService
	editorService  summaries.EditorService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(catalogService lectures.CatalogService, editorService summaries.EditorService) SummaryHandler {
	return &summaryHandler{
		catalogService: catalogService,
		editorService:  editorService,
	}
}

// resolveLectureName maps the path ID to the lecture folder name.
func (handler *summaryHandler) resolveLectureName(ctx *gin.Context) (string, bool) {
	lectureID := ctx.Param("id")
	lectureMeta, err := handler.catalogService.GetByID(ctx, lectureID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("lecture not found: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return "", false
	}
	return lectureMeta.Name, true
}

// GetSummary handles the GET request to fetch the stored lecture summary
// @Summary Get the stored summary of a lecture
// @Description Fetch the per-slide summaries, Q&A section and takeaways of a lecture.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} summaries.LectureSummary
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/summary [get]
func (handler *summaryHandler) GetSummary(ctx *gin.Context) {
	lectureName, ok := handler.resolveLectureName(ctx)
	if !ok {
		return
	}

	summary, err := handler.editorService.GetSummary(ctx, lectureName)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("summary not found: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// UpdateSlideKeyPoints handles the PUT request to replace one slide's key points
// @Summary Replace the key points of one slide
// @Description Replace the key point list of a slide. Empty strings are dropped.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Param page path int true "Slide number"
// @Param requestBody body UpdateKeyPointsRequest true "Key points"
// @Success 200 {object} summaries.SlideSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/summary/slides/{page} [put]
func (handler *summaryHandler) UpdateSlideKeyPoints(ctx *gin.Context) {
	lectureName, ok := handler.resolveLectureName(ctx)
	if !ok {
		return
	}

	slideNum := strutil.ConvertToInt(ctx.Param("page"))
	if slideNum < 1 {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid slide number: %s", ctx.Param("page"))
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var request UpdateKeyPointsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request body: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	slideSummary, err := handler.editorService.UpdateSlideKeyPoints(ctx, lectureName, slideNum, request.KeyPoints)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating key points: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, slideSummary)
}

// UpdateQA handles the PUT request to replace the Q&A section
// @Summary Replace the Q&A section of a lecture
// @Description Replace the Q&A list. Items with an empty question are dropped.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Param requestBody body UpdateQARequest true "Q&A items"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/summary/qa [put]
func (handler *summaryHandler) UpdateQA(ctx *gin.Context) {
	lectureName, ok := handler.resolveLectureName(ctx)
	if !ok {
		return
	}

	var request UpdateQARequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request body: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.editorService.UpdateQA(ctx, lectureName, request.Items); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating Q&A section: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = "Q&A section updated successfully"
	ctx.JSON(http.StatusOK, infoResponse)
}

// UpdateTakeaways handles the PUT request to replace the takeaway list
// @Summary Replace the takeaways of a lecture
// @Description Replace the takeaway list. Empty strings are dropped.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Param requestBody body UpdateTakeawaysRequest true "Takeaways"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/summary/takeaways [put]
func (handler *summaryHandler) UpdateTakeaways(ctx *gin.Context) {
	lectureName, ok := handler.resolveLectureName(ctx)
	if !ok {
		return
	}

	var request UpdateTakeawaysRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request body: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.editorService.UpdateTakeaways(ctx, lectureName, request.Takeaways); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating takeaways: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = "takeaways updated successfully"
	ctx.JSON(http.StatusOK, infoResponse)
}

// GetSlideImage handles the GET request to download one slide image
// @Summary Get the PNG image of one slide
// @Description Stream the rasterized slide image.
// @Tags Summary
// @Accept json
// @Produce png
// @Param id path string true "Lecture ID"
// @Param page path int true "Slide number"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lectures/{id}/slides/{page}/image [get]
func (handler *summaryHandler) GetSlideImage(ctx *gin.Context) {
	lectureName, ok := handler.resolveLectureName(ctx)
	if !ok {
		return
	}

	slideNum := strutil.ConvertToInt(ctx.Param("page"))
	if slideNum < 1 {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid slide number: %s", ctx.Param("page"))
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	data, err := handler.editorService.SlideImage(ctx, lectureName, slideNum)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("slide image not found: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}
