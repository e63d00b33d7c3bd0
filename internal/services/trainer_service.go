package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

// trainerService implements the role state machine. Transitions are strict:
// promotion starts from exactly `user`, demotion from exactly `trainer`.
// super_user and admin accounts are never touched by either.
type trainerService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewTrainerService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
) TrainerService {
	return &trainerService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *trainerService) PromoteToTrainer(ctx context.Context, userPK uint) error {
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		user, err := txRepo.User().GetByPK(ctx, userPK)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("user", "There is no user with pk=%d", userPK)
			}
			return err
		}

		if user.Role == models.RoleTrainer {
			return NewBusinessRuleError("promote_from_user",
				"This user is already a trainer")
		}
		if user.Role != models.RoleUser {
			return NewBusinessRuleError("promote_from_user",
				"Only user accounts can be promoted to trainers")
		}

		return txRepo.User().UpdateRole(ctx, userPK, models.RoleTrainer)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user promoted to trainer", "user_pk", userPK)
	s.publish(ctx, events.NewEvent(events.EventTrainerPromoted, map[string]any{
		"user_pk": userPK,
	}))
	return nil
}

func (s *trainerService) DemoteToUser(ctx context.Context, trainerPK uint) error {
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		trainer, err := txRepo.User().GetByPK(ctx, trainerPK)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("user", "User with pk=%d doesn't exist", trainerPK)
			}
			return err
		}

		if trainer.Role != models.RoleTrainer {
			return NewBusinessRuleError("demote_from_trainer",
				"This user is not a trainer")
		}

		return txRepo.User().UpdateRole(ctx, trainerPK, models.RoleUser)
	})
	if err != nil {
		return err
	}

	s.logger.Info("trainer demoted to user", "user_pk", trainerPK)
	s.publish(ctx, events.NewEvent(events.EventTrainerDemoted, map[string]any{
		"user_pk": trainerPK,
	}))
	return nil
}

func (s *trainerService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
