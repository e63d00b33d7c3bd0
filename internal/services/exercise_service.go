package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

type exerciseService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewExerciseService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ExerciseService {
	return &exerciseService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *exerciseService) Create(ctx context.Context, req *CreateExerciseRequest, callerRole models.UserRole) (*ExerciseResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exercise := &models.Exercise{
		Name:           req.Name,
		Description:    req.Description,
		PhotoTutorial:  req.TutorialPhoto,
		PhotoExtension: req.TutorialExtension,
		Video:          req.VideoExample,
		VideoExtension: req.VideoExtension,
		Author:         req.Author,
	}
	if len(req.Tags) > 0 {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, err
		}
		exercise.Tags = tags
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exists, err := txRepo.Exercise().ExistsByName(ctx, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return NewConflictError("exercise",
				"Exercise with name '%s' already exists", req.Name)
		}
		return txRepo.Exercise().Create(ctx, exercise)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, NewConflictError("exercise",
				"Exercise with name '%s' already exists", req.Name)
		}
		return nil, err
	}

	s.logger.Info("exercise created", "exercise_pk", exercise.PK, "name", exercise.Name)
	s.publish(ctx, events.NewEvent(events.EventExerciseCreated, map[string]any{
		"exercise_pk": exercise.PK,
		"name":        exercise.Name,
	}))

	return NewExerciseResponse(exercise, callerRole), nil
}

func (s *exerciseService) GetAll(ctx context.Context, callerRole models.UserRole) ([]*ExerciseResponse, error) {
	exercises, err := s.repo.Exercise().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, NewNotFoundError("exercise", "There are no exercises created yet")
	}

	responses := make([]*ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		responses = append(responses, NewExerciseResponse(&exercises[i], callerRole))
	}
	return responses, nil
}

func (s *exerciseService) Get(ctx context.Context, pk uint, callerRole models.UserRole) (*ExerciseResponse, error) {
	exercise, err := s.repo.Exercise().GetByPK(ctx, pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("exercise", "There is not exercise with this pk")
		}
		return nil, err
	}
	return NewExerciseResponse(exercise, callerRole), nil
}

func (s *exerciseService) Delete(ctx context.Context, pk uint) error {
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.Exercise().Delete(ctx, pk)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("exercise", "There is no exercise with this pk")
		}
		return err
	}

	s.logger.Info("exercise deleted", "exercise_pk", pk)
	s.publish(ctx, events.NewEvent(events.EventExerciseDeleted, map[string]any{
		"exercise_pk": pk,
	}))
	return nil
}

func (s *exerciseService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
