package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

// VisibilityService answers "may this viewer see this content?". It never
// mutates anything; every read path and every relationship/like mutation
// consults it before proceeding.
type VisibilityService struct {
	db *gorm.DB
}

func NewVisibilityService(db *gorm.DB) *VisibilityService {
	return &VisibilityService{db: db}
}

// IsBlocked reports whether a block edge exists between a and b in either
// direction. Blocks are stored directionally but act symmetrically; callers
// must use this predicate and never a single-direction lookup.
func (s *VisibilityService) IsBlocked(a, b uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block relation: %w", err)
	}
	return count > 0, nil
}

// IsPostVisible reports whether viewer may see post. A soft-deleted post is
// invisible to everyone on ordinary read paths; a nil viewer (anonymous) is
// only subject to the deleted filter.
func (s *VisibilityService) IsPostVisible(viewer *uuid.UUID, post *models.Post) (bool, error) {
	if post.Deleted {
		return false, nil
	}
	if viewer == nil {
		return true, nil
	}
	blocked, err := s.IsBlocked(*viewer, post.OwnerID)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

// FilterFeed returns, in input order, the subsequence of posts that are not
// deleted and whose owners have no block relation with viewer. The block
// set is loaded once so filtering a page costs a single query.
func (s *VisibilityService) FilterFeed(viewer *uuid.UUID, posts []models.Post) ([]models.Post, error) {
	var hidden map[uuid.UUID]struct{}
	if viewer != nil {
		var err error
		hidden, err = s.blockedCounterparts(*viewer)
		if err != nil {
			return nil, err
		}
	}

	visible := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.Deleted {
			continue
		}
		if _, ok := hidden[post.OwnerID]; ok {
			continue
		}
		visible = append(visible, post)
	}
	return visible, nil
}

// blockedCounterparts returns the set of users with a block edge to or from
// viewer.
func (s *VisibilityService) blockedCounterparts(viewer uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var blocks []models.Block
	err := s.db.
		Where("blocker_id = ? OR blocked_id = ?", viewer, viewer).
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load block edges: %w", err)
	}

	set := make(map[uuid.UUID]struct{}, len(blocks))
	for _, b := range blocks {
		if b.BlockerID == viewer {
			set[b.BlockedID] = struct{}{}
		} else {
			set[b.BlockerID] = struct{}{}
		}
	}
	return set, nil
}
