package handler

import (
	"errors"
	"net/http"
	"strings"

	"event-ticketing/internal/storage"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DownloadHandler 簽名下載路由：驗證 HMAC 簽名與時效後回源工件
type DownloadHandler struct {
	blobStore storage.BlobStore
	signer    *storage.URLSigner
}

func NewDownloadHandler(blobStore storage.BlobStore, signer *storage.URLSigner) *DownloadHandler {
	return &DownloadHandler{blobStore: blobStore, signer: signer}
}

func (h *DownloadHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/downloads/*key", h.Download)
}

func (h *DownloadHandler) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artifact key required"})
		return
	}

	if err := h.signer.Verify(key, c.Query("exp"), c.Query("sig")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired download link"})
		return
	}

	object, err := h.blobStore.GetObject(c, key)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "Download"), zap.Error(err))
		if errors.Is(err, apperrors.ErrArtifactNotFound) {
			log.Warn("Artifact not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Artifact not found"})
			return
		}
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Data(http.StatusOK, object.ContentType, object.Body)
}
