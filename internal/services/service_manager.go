package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AntonMilev36/fitness-service/internal/config"
	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	jwtConfig config.JWTConfig

	tokenService    TokenService
	userService     UserService
	exerciseService ExerciseService
	programService  ProgramService
	trainerService  TrainerService
	reportService   ReportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
	jwtConfig config.JWTConfig,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		jwtConfig: jwtConfig,
	}
}

// Initialize wires all services and verifies the persistence layer is
// reachable.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.tokenService = NewTokenService(sm.jwtConfig.Secret, sm.jwtConfig.Expiry)
	sm.userService = NewUserService(sm.repo, sm.tokenService, sm.publisher, sm.logger, sm.validator)
	sm.exerciseService = NewExerciseService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.programService = NewProgramService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.trainerService = NewTrainerService(sm.repo, sm.publisher, sm.logger)
	sm.reportService = NewReportService(sm.repo, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.publisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	sm.shutdown = true
	return nil
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.userService
}

func (sm *serviceManager) Exercise() ExerciseService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.exerciseService
}

func (sm *serviceManager) Program() ProgramService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.programService
}

func (sm *serviceManager) Trainer() TrainerService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.trainerService
}

func (sm *serviceManager) Token() TokenService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.tokenService
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.reportService
}
