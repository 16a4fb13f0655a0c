package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"

	"gorm.io/gorm"
)

type ToggleLikeOutput struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type TagInput struct {
	TaggedUserID uint
	PositionX    *float64
	PositionY    *float64
}

type SocialService interface {
	ToggleLike(ctx context.Context, mediaID uint, userID uint) (ToggleLikeOutput, error)
	TagUser(ctx context.Context, mediaID uint, taggerID uint, in TagInput) error
}

type socialService struct {
	media repositories.MediaRepository
	users repositories.UserRepository
	likes repositories.LikeRepository
	tags  repositories.TagRepository
}

func NewSocialService(
	media repositories.MediaRepository,
	users repositories.UserRepository,
	likes repositories.LikeRepository,
	tags repositories.TagRepository,
) SocialService {
	return &socialService{media: media, users: users, likes: likes, tags: tags}
}

// ToggleLike alternates the (media, user) like row with conditional
// single-statement operations. There is no read-then-write window: the delete
// reports whether a row existed, and the insert defers to the unique index, so
// interleaved toggles can never leave duplicate rows.
func (s *socialService) ToggleLike(ctx context.Context, mediaID uint, userID uint) (ToggleLikeOutput, error) {
	if _, err := s.media.GetApprovedByID(ctx, nil, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToggleLikeOutput{}, newAppError(http.StatusNotFound, "media not found", nil)
		}
		return ToggleLikeOutput{}, newAppError(http.StatusInternalServerError, "get media failed", err)
	}

	deleted, err := s.likes.DeleteByKey(ctx, nil, mediaID, userID)
	if err != nil {
		return ToggleLikeOutput{}, newAppError(http.StatusInternalServerError, "toggle like failed", err)
	}

	liked := false
	if !deleted {
		// A raced duplicate insert is absorbed by the unique index; either way
		// the pair exists afterwards.
		if _, err := s.likes.InsertIfAbsent(ctx, nil, &models.MediaLike{MediaID: mediaID, UserID: userID}); err != nil {
			return ToggleLikeOutput{}, newAppError(http.StatusInternalServerError, "toggle like failed", err)
		}
		liked = true
	}

	count, err := s.likes.CountByMedia(ctx, nil, mediaID)
	if err != nil {
		return ToggleLikeOutput{}, newAppError(http.StatusInternalServerError, "count likes failed", err)
	}

	return ToggleLikeOutput{Liked: liked, LikeCount: count}, nil
}

// TagUser inserts or updates the (media, tagged user) pair atomically; the
// latest tagger and position win and no conflict is reported to the caller.
func (s *socialService) TagUser(ctx context.Context, mediaID uint, taggerID uint, in TagInput) error {
	if !positionInRange(in.PositionX) || !positionInRange(in.PositionY) {
		return newAppError(http.StatusBadRequest, "position must be between 0 and 100", nil)
	}

	if _, err := s.media.GetApprovedByID(ctx, nil, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "media not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "get media failed", err)
	}

	if _, err := s.users.GetActiveByID(ctx, nil, in.TaggedUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "user not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "get user failed", err)
	}

	tag := models.MediaTag{
		MediaID:      mediaID,
		TaggedUserID: in.TaggedUserID,
		TaggedBy:     taggerID,
		PositionX:    in.PositionX,
		PositionY:    in.PositionY,
	}
	if err := s.tags.Upsert(ctx, nil, &tag); err != nil {
		return newAppError(http.StatusInternalServerError, "tag user failed", err)
	}
	return nil
}

func positionInRange(pos *float64) bool {
	if pos == nil {
		return true
	}
	return *pos >= 0 && *pos <= 100
}
