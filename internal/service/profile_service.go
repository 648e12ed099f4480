package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/repository"
	"sanam/my-workouts/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoAvatar     = errors.New("user has no avatar")
)

// ProfileService exposes the caller's own account details and avatar. The
// avatar image itself lives in object storage; clients upload and download
// it through presigned URLs.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	// AvatarUploadURL returns a presigned PUT URL for the user's avatar
	// object and records the object key on the user document.
	AvatarUploadURL(ctx context.Context, userID, contentType string) (string, error)
	// AvatarURL returns a presigned GET URL for the stored avatar, or
	// ErrNoAvatar when none has been uploaded.
	AvatarURL(ctx context.Context, userID string) (string, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.lookup(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *profileService) AvatarUploadURL(ctx context.Context, userID, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: avatar content type must be an image", ErrValidation)
	}
	user, err := s.lookup(ctx, userID)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("avatars/%s", user.ID.Hex())
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.SetPhotoKey(ctx, user.ID, objectKey); err != nil {
		return "", err
	}
	return url, nil
}

func (s *profileService) AvatarURL(ctx context.Context, userID string) (string, error) {
	user, err := s.lookup(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.PhotoKey == "" {
		return "", ErrNoAvatar
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, user.PhotoKey, storage.DefaultPresignedURLExpiry)
}

func (s *profileService) lookup(ctx context.Context, userID string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
