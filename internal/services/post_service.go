package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

// PostService manages posts and likes.
type PostService struct {
	db         *gorm.DB
	visibility *VisibilityService
	activities *ActivityService
}

func NewPostService(db *gorm.DB, visibility *VisibilityService, activities *ActivityService) *PostService {
	return &PostService{db: db, visibility: visibility, activities: activities}
}

// Create inserts a post and records Activity(post) in one transaction.
func (s *PostService) Create(ownerID uuid.UUID, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", ErrPrecondition)
	}

	post := &models.Post{
		ID:      uuid.New(),
		Content: content,
		OwnerID: ownerID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return s.activities.Record(tx, &ownerID, models.VerbPost, nil, &post.ID, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Get fetches a post for a viewer. A missing or soft-deleted post is not
// found; a block between viewer and owner hides it with ErrBlocked.
func (s *PostService) Get(viewerID uuid.UUID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.fetch(postID)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, ErrNotFound
	}

	blocked, err := s.visibility.IsBlocked(viewerID, post.OwnerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}
	return post, nil
}

// Delete soft-deletes a post: the row is kept so activity records keep
// resolving, only the flag flips. Self-delete by the owner and moderation
// both funnel through here; actor is nil for operator-token calls. Deleting
// an already-deleted post is a silent success without a second log entry.
func (s *PostService) Delete(postID uuid.UUID, actor *models.User) error {
	post, err := s.fetch(postID)
	if err != nil {
		return err
	}

	if actor != nil && actor.ID != post.OwnerID && !actor.Role.AtLeast(models.RoleAdmin) {
		return ErrInsufficientPrivilege
	}
	if post.Deleted {
		return nil
	}

	var actorID *uuid.UUID
	if actor != nil {
		actorID = &actor.ID
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).Update("deleted", true).Error; err != nil {
			return err
		}
		return s.activities.Record(tx, actorID, models.VerbDeletePost, nil, &post.ID, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// Like inserts a like and records Activity(like) in one transaction. The
// unique (user, post) index converts concurrent duplicates into the no-op
// outcome; the caller reports "already liked", not a server error.
func (s *PostService) Like(userID uuid.UUID, postID uuid.UUID) (*models.Like, error) {
	post, err := s.fetch(postID)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, ErrNotFound
	}

	blocked, err := s.visibility.IsBlocked(userID, post.OwnerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}

	like := &models.Like{
		ID:     uuid.New(),
		UserID: userID,
		PostID: post.ID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return s.activities.Record(tx, &userID, models.VerbLike, nil, &post.ID, nil)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	return like, nil
}

// Unlike removes the like if present. Removing a missing like is a silent
// success and emits no activity; only the post itself must exist.
func (s *PostService) Unlike(userID uuid.UUID, postID uuid.UUID) error {
	if _, err := s.fetch(postID); err != nil {
		return err
	}
	err := s.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// Feed returns up to limit non-deleted posts, newest first, with posts from
// block-related owners filtered out for the viewer. A nil viewer gets only
// the deleted filter.
func (s *PostService) Feed(viewerID *uuid.UUID, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Where("deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return s.visibility.FilterFeed(viewerID, posts)
}

// fetch loads a post regardless of its deleted flag.
func (s *PostService) fetch(postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := s.db.First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &post, nil
}
