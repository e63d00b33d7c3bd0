package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

type ExercisePostgreSQL struct {
	db *gorm.DB
}

func NewExercisePostgreSQL(db *gorm.DB) repositories.ExerciseRepository {
	return &ExercisePostgreSQL{db: db}
}

func (e *ExercisePostgreSQL) Create(ctx context.Context, exercise *models.Exercise) error {
	if err := e.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (e *ExercisePostgreSQL) GetByPK(ctx context.Context, pk uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := e.db.WithContext(ctx).First(&exercise, pk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return &exercise, nil
}

func (e *ExercisePostgreSQL) GetByPKs(ctx context.Context, pks []uint) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := e.db.WithContext(ctx).Where("pk IN ?", pks).Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	return exercises, nil
}

func (e *ExercisePostgreSQL) List(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := e.db.WithContext(ctx).Order("pk ASC").Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (e *ExercisePostgreSQL) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := e.db.WithContext(ctx).Model(&models.Exercise{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check exercise name: %w", err)
	}
	return count > 0, nil
}

func (e *ExercisePostgreSQL) Delete(ctx context.Context, pk uint) error {
	result := e.db.WithContext(ctx).Delete(&models.Exercise{}, pk)
	if result.Error != nil {
		return fmt.Errorf("failed to delete exercise: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
