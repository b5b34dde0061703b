package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"majestic-art-be/internal/auth"
	"majestic-art-be/internal/catalog"
	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// 5 MB is plenty for a storefront image.
const maxImageBytes = 5 << 20

func (h *Handlers) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, h.Cfg.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateAdminJWT(h.Cfg.JWTSecret)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.SetCookie("access_token", token, 24*60*60, "/", "", h.secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminListArtworks returns the whole catalog, hidden and unavailable
// pieces included.
func (h *Handlers) AdminListArtworks(c *gin.Context) {
	artworks, err := h.Catalog.ListArtworks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

func (h *Handlers) AdminCreateArtwork(c *gin.Context) {
	var input catalog.NewArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	art, err := h.Catalog.CreateArtwork(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create artwork"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artwork": art})
}

func (h *Handlers) AdminUpdateArtwork(c *gin.Context) {
	var input catalog.UpdateArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	art, err := h.Catalog.UpdateArtwork(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
		case errors.Is(err, catalog.ErrNoUpdateFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update artwork"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"artwork": art})
}

func (h *Handlers) AdminDeleteArtwork(c *gin.Context) {
	if err := h.Catalog.DeleteArtwork(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete artwork"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AdminUploadArtworkImage stores the uploaded file and points the
// artwork's image at the public URL.
func (h *Handlers) AdminUploadArtworkImage(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only image uploads are allowed"})
		return
	}

	key := fmt.Sprintf("%s%s", utils.Slugify(id), filepath.Ext(fileHeader.Filename))
	url, err := h.Uploader.Upload(c.Request.Context(), key, contentType, data)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to store image"})
		return
	}

	art, err := h.Catalog.UpdateArtwork(c.Request.Context(), id, catalog.UpdateArtworkInput{
		Image: utils.StrPtr(url),
	})
	if err != nil {
		if errors.Is(err, catalog.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artwork": art, "imageUrl": url})
}
