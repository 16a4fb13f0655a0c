package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/middleware"
	"github.com/mdhaziqomar/memories/repositories"
	"github.com/mdhaziqomar/memories/services"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

// UploadMedia accepts a single multipart file plus the target event and an
// optional taken date. The body is capped before any buffering happens.
func UploadMedia(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	maxSize := config.AppConfig.Storage.MaxFileSize
	// Leave headroom for the non-file form fields.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+1024*1024)

	file, header, err := c.Request.FormFile("media")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	eventID, err := strconv.ParseUint(c.PostForm("event_id"), 10, 32)
	if err != nil || eventID == 0 {
		utils.Error(c, http.StatusBadRequest, "valid event_id is required")
		return
	}

	var takenDate *time.Time
	if raw := c.PostForm("taken_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "taken_date must be YYYY-MM-DD")
			return
		}
		takenDate = &parsed
	}

	out, err := getServices().Media.Upload(c.Request.Context(), userID, file, header, services.UploadInput{
		EventID:   uint(eventID),
		TakenDate: takenDate,
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Created(c, gin.H{
		"id":        out.ID,
		"message":   "media uploaded successfully",
		"filename":  out.Filename,
		"file_type": out.FileType,
	})
}

func ListMedia(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Query("event_id"), 10, 32)
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := getServices().Media.List(c.Request.Context(), services.ListMediaInput{
		Filter: repositories.MediaFilter{
			EventID:  uint(eventID),
			Year:     year,
			Month:    month,
			FileType: c.Query("file_type"),
		},
		Page:  page,
		Limit: limit,
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, out)
}

func GetMediaDetail(c *gin.Context) {
	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid media id")
		return
	}

	out, err := getServices().Media.GetDetail(c.Request.Context(), uint(mediaID))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, out)
}

func ServeMediaFile(c *gin.Context) {
	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid media id")
		return
	}

	info, err := getServices().Media.GetFileInfo(c.Request.Context(), uint(mediaID))
	if respondServiceError(c, err) {
		return
	}

	c.Header("Content-Type", info.ContentType)
	c.File(info.AbsPath)
}

func ServeMediaThumbnail(c *gin.Context) {
	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid media id")
		return
	}

	info, err := getServices().Media.GetThumbnailInfo(c.Request.Context(), uint(mediaID))
	if respondServiceError(c, err) {
		return
	}

	c.Header("Content-Type", info.ContentType)
	c.File(info.AbsPath)
}

func ToggleLike(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid media id")
		return
	}

	out, err := getServices().Social.ToggleLike(c.Request.Context(), uint(mediaID), userID)
	if respondServiceError(c, err) {
		return
	}

	message := "media unliked"
	if out.Liked {
		message = "media liked"
	}
	utils.Success(c, gin.H{
		"liked":      out.Liked,
		"like_count": out.LikeCount,
		"message":    message,
	})
}

type TagRequest struct {
	TaggedUserID uint     `json:"tagged_user_id" binding:"required"`
	PositionX    *float64 `json:"position_x"`
	PositionY    *float64 `json:"position_y"`
}

func TagUser(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid media id")
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err = getServices().Social.TagUser(c.Request.Context(), uint(mediaID), userID, services.TagInput{
		TaggedUserID: req.TaggedUserID,
		PositionX:    req.PositionX,
		PositionY:    req.PositionY,
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"message": "user tagged successfully"})
}
