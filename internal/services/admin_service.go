package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

// AdminService carries the privileged mutations: account removal and role
// promotion/demotion. Route middleware enforces the minimum caller role;
// target-role-dependent checks live here because they depend on state, not
// on the caller's tier alone.
type AdminService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewAdminService(db *gorm.DB, activities *ActivityService) *AdminService {
	return &AdminService{db: db, activities: activities}
}

// DeleteUser removes an account and everything it owns: posts (hard),
// likes given and received on its posts, follow and block edges in either
// direction, refresh tokens, and reports it filed. Activity references are
// weak and are nulled out instead, so the log survives. Deleting a user
// whose role is owner requires an owner caller regardless of the caller's
// own gate; actor is nil for operator-token calls and those cannot remove
// the owner either.
func (s *AdminService) DeleteUser(actor *models.User, target *models.User) error {
	if target.Role == models.RoleOwner && (actor == nil || actor.Role != models.RoleOwner) {
		return ErrInsufficientPrivilege
	}

	var actorID *uuid.UUID
	if actor != nil {
		actorID = &actor.ID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uuid.UUID
		if err := tx.Model(&models.Post{}).Where("owner_id = ?", target.ID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Activity{}).Where("target_post_id IN ?", postIDs).
				Update("target_post_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", target.ID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", target.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", target.ID, target.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blocker_id = ? OR blocked_id = ?", target.ID, target.ID).
			Delete(&models.Block{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", target.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_id = ?", target.ID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Activity{}).Where("actor_id = ?", target.ID).
			Update("actor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Activity{}).Where("target_user_id = ?", target.ID).
			Update("target_user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, "id = ?", target.ID).Error; err != nil {
			return err
		}

		// The user reference would be dangling, so only the username goes in.
		return s.activities.Record(tx, actorID, models.VerbDeleteUser, nil, nil,
			map[string]any{"username": target.Username})
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Promote raises a user to admin. Promoting an admin again is the no-op
// outcome; the owner role is never changed through this path.
func (s *AdminService) Promote(target *models.User) error {
	switch target.Role {
	case models.RoleOwner:
		return fmt.Errorf("%w: cannot change the owner role", ErrPrecondition)
	case models.RoleAdmin:
		return ErrAlreadyExists
	}

	if err := s.db.Model(target).Update("role", models.RoleAdmin).Error; err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	return nil
}

// Demote lowers an admin back to user. Demoting anyone who is not
// currently an admin fails the precondition.
func (s *AdminService) Demote(target *models.User) error {
	if target.Role != models.RoleAdmin {
		return fmt.Errorf("%w: user is not an admin", ErrPrecondition)
	}

	if err := s.db.Model(target).Update("role", models.RoleUser).Error; err != nil {
		return fmt.Errorf("failed to demote user: %w", err)
	}
	return nil
}
