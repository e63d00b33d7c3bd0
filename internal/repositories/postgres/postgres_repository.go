package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	user        repositories.UserRepository
	exercise    repositories.ExerciseRepository
	program     repositories.ProgramRepository
	userProgram repositories.UserProgramRepository
}

// NewPostgreSQLRepository creates a repository manager with all
// sub-repositories bound to the given database handle.
func NewPostgreSQLRepository(db *gorm.DB) repositories.Repository {
	return &PostgreSQLRepository{
		db:          db,
		user:        NewUserPostgreSQL(db),
		exercise:    NewExercisePostgreSQL(db),
		program:     NewProgramPostgreSQL(db),
		userProgram: NewUserProgramPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

func (r *PostgreSQLRepository) Exercise() repositories.ExerciseRepository {
	return r.exercise
}

func (r *PostgreSQLRepository) Program() repositories.ProgramRepository {
	return r.program
}

func (r *PostgreSQLRepository) UserProgram() repositories.UserProgramRepository {
	return r.userProgram
}

// WithTransaction executes fn within a database transaction. The repository
// passed to fn has every sub-repository bound to that transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPostgreSQLRepository(tx))
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
