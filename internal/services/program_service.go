package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

type programService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProgramService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ProgramService {
	return &programService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Create resolves every referenced exercise before writing anything, so a
// single missing pk fails the whole request with no rows created.
func (s *programService) Create(ctx context.Context, req *CreateProgramRequest, callerRole models.UserRole) (*ProgramResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	program := &models.Program{Title: req.Title}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exercises := make([]models.Exercise, 0, len(req.Exercises))
		for _, ref := range req.Exercises {
			exercise, err := txRepo.Exercise().GetByPK(ctx, ref.PK)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NewNotFoundError("exercise",
						"Exercise with pk=%d does not exist", ref.PK)
				}
				return err
			}
			exercises = append(exercises, *exercise)
		}

		program.Exercises = exercises
		return txRepo.Program().Create(ctx, program)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("program created", "program_pk", program.PK, "title", program.Title)
	s.publish(ctx, events.NewEvent(events.EventProgramCreated, map[string]any{
		"program_pk": program.PK,
		"title":      program.Title,
	}))

	return NewProgramResponse(program, callerRole), nil
}

func (s *programService) GetAll(ctx context.Context, callerRole models.UserRole) ([]*ProgramResponse, error) {
	programs, err := s.repo.Program().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return nil, NewNotFoundError("program", "There are no programs created yet!")
	}

	responses := make([]*ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, NewProgramResponse(&programs[i], callerRole))
	}
	return responses, nil
}

func (s *programService) Get(ctx context.Context, pk uint, callerRole models.UserRole) (*ProgramResponse, error) {
	program, err := s.repo.Program().GetByPK(ctx, pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("program", "This program does not exist")
		}
		return nil, err
	}
	return NewProgramResponse(program, callerRole), nil
}

// Delete removes the program and cascades over both association tables in
// one transaction: saved-program rows and exercise join rows never outlive
// the program.
func (s *programService) Delete(ctx context.Context, pk uint) error {
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if _, err := txRepo.Program().GetByPK(ctx, pk); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("program",
					"Program with pk=%d does not exist", pk)
			}
			return err
		}

		if err := txRepo.UserProgram().DeleteByProgram(ctx, pk); err != nil {
			return err
		}
		return txRepo.Program().Delete(ctx, pk)
	})
	if err != nil {
		return err
	}

	s.logger.Info("program deleted", "program_pk", pk)
	s.publish(ctx, events.NewEvent(events.EventProgramDeleted, map[string]any{
		"program_pk": pk,
	}))
	return nil
}

func (s *programService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
