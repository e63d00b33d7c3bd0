package repositories

import (
	"context"
	"errors"

	"github.com/AntonMilev36/fitness-service/internal/models"
)

// ErrDuplicateKey is returned when a write violates a unique constraint.
// Repositories translate driver-specific errors into it so services can
// map races on uniqueness checks to the same outcome as their pre-checks.
var ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

// UserRepository handles user rows. Users are never hard-deleted here;
// role changes go through UpdateRole only.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByPK(ctx context.Context, pk uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, pk uint, role models.UserRole) error
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	GetByPK(ctx context.Context, pk uint) (*models.Exercise, error)
	GetByPKs(ctx context.Context, pks []uint) ([]models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, pk uint) error
}

type ProgramRepository interface {
	// Create persists the program together with its exercise associations.
	Create(ctx context.Context, program *models.Program) error
	GetByPK(ctx context.Context, pk uint) (*models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
	// Delete removes the program and its join rows to exercises. User
	// associations are removed separately by the UserProgram repository so
	// the cascade stays an explicit multi-statement transaction.
	Delete(ctx context.Context, pk uint) error
}

type UserProgramRepository interface {
	Create(ctx context.Context, userProgram *models.UserProgram) error
	Exists(ctx context.Context, userPK, programPK uint) (bool, error)
	// ProgramsForUser returns the programs saved by the user, with their
	// exercises preloaded.
	ProgramsForUser(ctx context.Context, userPK uint) ([]models.Program, error)
	// ProgramForUser returns one saved program, or gorm.ErrRecordNotFound
	// when the user has no association with it.
	ProgramForUser(ctx context.Context, userPK, programPK uint) (*models.Program, error)
	Delete(ctx context.Context, userPK, programPK uint) error
	DeleteByProgram(ctx context.Context, programPK uint) error
}

// Repository aggregates the entity repositories and scopes them to a single
// transaction via WithTransaction.
type Repository interface {
	User() UserRepository
	Exercise() ExerciseRepository
	Program() ProgramRepository
	UserProgram() UserProgramRepository

	// WithTransaction runs fn against a repository bound to one database
	// transaction; any error rolls back all writes made through it.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
}
