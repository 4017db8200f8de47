package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

// RelationshipService manages follow and block edges between users.
type RelationshipService struct {
	db         *gorm.DB
	visibility *VisibilityService
	activities *ActivityService
}

func NewRelationshipService(db *gorm.DB, visibility *VisibilityService, activities *ActivityService) *RelationshipService {
	return &RelationshipService{db: db, visibility: visibility, activities: activities}
}

// Follow creates a follow edge and records the activity in one transaction.
// A block in either direction between the pair forbids the follow. The
// unique (follower, followed) index is the source of truth for duplicates:
// a concurrent duplicate surfaces as the no-op outcome, never as a crash.
func (s *RelationshipService) Follow(followerID, followedID uuid.UUID) (*models.Follow, error) {
	if followerID == followedID {
		return nil, ErrSelfRelation
	}

	blocked, err := s.visibility.IsBlocked(followerID, followedID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}

	edge := &models.Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FollowedID: followedID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		return s.activities.Record(tx, &followerID, models.VerbFollow, &followedID, nil, nil)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}
	return edge, nil
}

// Unfollow removes the edge if present. Removing a missing edge is a silent
// success and, like all negations, emits no activity.
func (s *RelationshipService) Unfollow(followerID, followedID uuid.UUID) error {
	err := s.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove follow: %w", err)
	}
	return nil
}

// Block creates a block edge and records the activity in one transaction.
// An existing follow edge in either direction is left in place: visibility
// suppression happens at read time through the visibility filter, not by
// mutating the follow table.
func (s *RelationshipService) Block(blockerID, blockedID uuid.UUID) (*models.Block, error) {
	if blockerID == blockedID {
		return nil, ErrSelfRelation
	}

	edge := &models.Block{
		ID:        uuid.New(),
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		return s.activities.Record(tx, &blockerID, models.VerbBlock, &blockedID, nil, nil)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create block: %w", err)
	}
	return edge, nil
}

// Unblock removes the edge if present. Idempotent, no activity.
func (s *RelationshipService) Unblock(blockerID, blockedID uuid.UUID) error {
	err := s.db.
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove block: %w", err)
	}
	return nil
}
