package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

type UserProgramPostgreSQL struct {
	db *gorm.DB
}

func NewUserProgramPostgreSQL(db *gorm.DB) repositories.UserProgramRepository {
	return &UserProgramPostgreSQL{db: db}
}

func (up *UserProgramPostgreSQL) Create(ctx context.Context, userProgram *models.UserProgram) error {
	if err := up.db.WithContext(ctx).Create(userProgram).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (up *UserProgramPostgreSQL) Exists(ctx context.Context, userPK, programPK uint) (bool, error) {
	var count int64
	err := up.db.WithContext(ctx).Model(&models.UserProgram{}).
		Where("user_pk = ? AND program_pk = ?", userPK, programPK).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved program: %w", err)
	}
	return count > 0, nil
}

func (up *UserProgramPostgreSQL) ProgramsForUser(ctx context.Context, userPK uint) ([]models.Program, error) {
	var programs []models.Program
	err := up.db.WithContext(ctx).
		Joins("JOIN users_programs ON users_programs.program_pk = programs.pk").
		Where("users_programs.user_pk = ?", userPK).
		Preload("Exercises").
		Order("programs.pk ASC").
		Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved programs: %w", err)
	}
	return programs, nil
}

func (up *UserProgramPostgreSQL) ProgramForUser(ctx context.Context, userPK, programPK uint) (*models.Program, error) {
	var program models.Program
	err := up.db.WithContext(ctx).
		Joins("JOIN users_programs ON users_programs.program_pk = programs.pk").
		Where("users_programs.user_pk = ? AND programs.pk = ?", userPK, programPK).
		Preload("Exercises").
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get saved program: %w", err)
	}
	return &program, nil
}

func (up *UserProgramPostgreSQL) Delete(ctx context.Context, userPK, programPK uint) error {
	result := up.db.WithContext(ctx).
		Where("user_pk = ? AND program_pk = ?", userPK, programPK).
		Delete(&models.UserProgram{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved program: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (up *UserProgramPostgreSQL) DeleteByProgram(ctx context.Context, programPK uint) error {
	err := up.db.WithContext(ctx).
		Where("program_pk = ?", programPK).
		Delete(&models.UserProgram{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete program associations: %w", err)
	}
	return nil
}
