package http

import (
	"errors"
	"net/http"

	"yt-catalog/domain/dto"
	"yt-catalog/domain/model"
	"yt-catalog/usecase"

	"github.com/gin-gonic/gin"
)

// ICatalogHandler defines the catalog HTTP handlers.
type ICatalogHandler interface {
	ImportChannel(ctx *gin.Context)
	GetCatalog(ctx *gin.Context)
	GetChannelVideos(ctx *gin.Context)
}

// CatalogHandler implements the catalog HTTP handlers.
type CatalogHandler struct {
	importerUseCase usecase.IImporterUseCase
}

// NewCatalogHandler creates a new catalog handler instance.
func NewCatalogHandler(importerUseCase usecase.IImporterUseCase) ICatalogHandler {
	return &CatalogHandler{importerUseCase: importerUseCase}
}

// ImportChannel handles POST /api/catalog/import
func (h *CatalogHandler) ImportChannel(ctx *gin.Context) {
	var req dto.ImportChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	res, err := h.importerUseCase.ImportChannel(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(importStatus(err), gin.H{
			"error":   "import failed",
			"message": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetCatalog handles GET /api/catalog
func (h *CatalogHandler) GetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.importerUseCase.Catalog())
}

// GetChannelVideos handles GET /api/catalog/:channelId
func (h *CatalogHandler) GetChannelVideos(ctx *gin.Context) {
	channelID := ctx.Param("channelId")
	entry, ok := h.importerUseCase.ChannelVideos(channelID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "channel not in catalog", "channelId": channelID})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// importStatus maps the importer's typed errors onto HTTP statuses. Anything
// else is treated as an upstream failure.
func importStatus(err error) int {
	var notFound *model.NotFoundError
	var badDate *model.InvalidDateFormatError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badDate):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
