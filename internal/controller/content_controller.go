package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
	"balanceed_backend/pkg/logger"
)

type ContentController struct {
	StorageService *service.StorageService
}

func NewContentController(storageService *service.StorageService) *ContentController {
	return &ContentController{StorageService: storageService}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".mkv":  true,
}

// @Summary Upload a course thumbnail
// @Tags content
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "image file"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /upload/thumbnail [post]
func (c *ContentController) UploadThumbnail(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		util.BadRequest(ctx, "unsupported image format")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err, "failed to read upload")
		return
	}
	defer src.Close()

	filename := "thumbnails/" + model.GenerateUUID() + ext
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err, "failed to store upload")
		return
	}

	util.Created(ctx, gin.H{"url": url})
}

// @Summary Upload a lesson video
// @Description Stores the video, probes its duration and generates a thumbnail
// @Tags content
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "video file"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /upload/video [post]
func (c *ContentController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !videoExtensions[ext] {
		util.BadRequest(ctx, "unsupported video format")
		return
	}

	id := model.GenerateUUID()
	tmpPath := filepath.Join(os.TempDir(), id+ext)
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err, "failed to save upload")
		return
	}
	defer os.Remove(tmpPath)

	info, err := util.GetVideoInfo(tmpPath)
	if err != nil {
		util.BadRequest(ctx, "could not read video metadata")
		return
	}

	videoName := "videos/" + id + ext
	videoURL, err := c.StorageService.UploadFile(ctx.Request.Context(), videoName, tmpPath, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err, "failed to store video")
		return
	}

	// A missing thumbnail is not fatal; the lesson can still reference the
	// video.
	thumbnailURL := ""
	thumbPath := filepath.Join(os.TempDir(), id+".jpg")
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err != nil {
		logger.Log.Warn("thumbnail generation failed", zap.Error(err))
	} else {
		defer os.Remove(thumbPath)
		thumbName := "thumbnails/" + id + ".jpg"
		if url, err := c.StorageService.UploadFile(ctx.Request.Context(), thumbName, thumbPath, "image/jpeg"); err == nil {
			thumbnailURL = url
		}
	}

	util.Created(ctx, gin.H{
		"url":          videoURL,
		"thumbnailUrl": thumbnailURL,
		"duration":     int(info.Duration),
		"width":        info.Width,
		"height":       info.Height,
		"format":       info.Format,
		"size":         fmt.Sprintf("%d", info.Size),
	})
}
