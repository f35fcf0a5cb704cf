package v1

import (
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	catalogService lectures.CatalogService,
	renderService lectures.RenderService,
	editorService summaries.EditorService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Lecture Routes
	lectureHandler := NewLectureHandler(catalogService, renderService)
	v1.GET("/lectures", lectureHandler.List)
	v1.POST("/lectures/scan", lectureHandler.Scan)
	v1.GET("/lectures/:id", lectureHandler.GetByID)
	v1.DELETE("/lectures/:id", lectureHandler.DeleteByID)
	v1.POST("/lectures/:id/render", lectureHandler.Render)

	// Summary Routes
	summaryHandler := NewSummaryHandler(catalogService, editorService)
	v1.GET("/lectures/:id/summary", summaryHandler.GetSummary)
	v1.PUT("/lectures/:id/summary/slides/:page", summaryHandler.UpdateSlideKeyPoints)
	v1.PUT("/lectures/:id/summary/qa", summaryHandler.UpdateQA)
	v1.PUT("/lectures/:id/summary/takeaways", summaryHandler.UpdateTakeaways)
	v1.GET("/lectures/:id/slides/:page/image", summaryHandler.GetSlideImage)
}
