package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	tokens    TokenService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(
	repo repositories.Repository,
	tokens TokenService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) UserService {
	return &userService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Register creates a user with role fixed to `user` and returns a fresh
// token. The email uniqueness pre-check is best-effort; a concurrent
// registration is caught by the unique constraint and mapped to the same
// conflict.
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exists, err := txRepo.User().ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return NewConflictError("user", "User with this email already exist")
		}
		return txRepo.User().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, NewConflictError("user", "User with this email already exist")
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_pk", user.PK)
	s.publish(ctx, events.NewEvent(events.EventUserRegistered, map[string]any{
		"user_pk": user.PK,
	}))

	return &TokenResponse{Token: token}, nil
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are indistinguishable to prevent account enumeration.
func (s *userService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: token}, nil
}

// AddProgram saves a program to the user's list. A missing program is a
// bad request here, not a 404, matching the write nature of the operation.
func (s *userService) AddProgram(ctx context.Context, user *models.User, programPK uint) error {
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		_, err := txRepo.Program().GetByPK(ctx, programPK)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewBusinessRuleError("program_exists", "This program does not exist")
			}
			return err
		}

		saved, err := txRepo.UserProgram().Exists(ctx, user.PK, programPK)
		if err != nil {
			return err
		}
		if saved {
			return NewBusinessRuleError("no_duplicate_save", "This program is already saved")
		}

		return txRepo.UserProgram().Create(ctx, &models.UserProgram{
			UserPK:    user.PK,
			ProgramPK: programPK,
		})
	})
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return NewBusinessRuleError("no_duplicate_save", "This program is already saved")
	}
	return err
}

func (s *userService) GetAllUserPrograms(ctx context.Context, user *models.User) ([]*ProgramResponse, error) {
	programs, err := s.repo.UserProgram().ProgramsForUser(ctx, user.PK)
	if err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return nil, NewNotFoundError("user_program", "You don't have any programs yet")
	}

	responses := make([]*ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, NewProgramResponse(&programs[i], user.Role))
	}
	return responses, nil
}

// GetSpecificProgram deliberately conflates "no such program" and "not in
// your list" so callers cannot probe which programs exist.
func (s *userService) GetSpecificProgram(ctx context.Context, user *models.User, programPK uint) (*ProgramResponse, error) {
	program, err := s.repo.UserProgram().ProgramForUser(ctx, user.PK, programPK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("user_program",
				"This program doesn't exist or is not added to your list")
		}
		return nil, err
	}
	return NewProgramResponse(program, user.Role), nil
}

func (s *userService) DeleteProgram(ctx context.Context, user *models.User, programPK uint) error {
	return s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		_, err := txRepo.Program().GetByPK(ctx, programPK)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("program", "Program with pk=%d doesn't exist", programPK)
			}
			return err
		}

		err = txRepo.UserProgram().Delete(ctx, user.PK, programPK)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("user_program", "This program is not in your list")
		}
		return err
	})
}

func (s *userService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
