package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

type ProgramPostgreSQL struct {
	db *gorm.DB
}

func NewProgramPostgreSQL(db *gorm.DB) repositories.ProgramRepository {
	return &ProgramPostgreSQL{db: db}
}

func (p *ProgramPostgreSQL) Create(ctx context.Context, program *models.Program) error {
	if err := p.db.WithContext(ctx).Create(program).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (p *ProgramPostgreSQL) GetByPK(ctx context.Context, pk uint) (*models.Program, error) {
	var program models.Program
	err := p.db.WithContext(ctx).
		Preload("Exercises").
		First(&program, pk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	return &program, nil
}

func (p *ProgramPostgreSQL) List(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	err := p.db.WithContext(ctx).
		Preload("Exercises").
		Order("pk ASC").
		Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (p *ProgramPostgreSQL) Delete(ctx context.Context, pk uint) error {
	// Join rows to exercises go first so the delete never orphans them.
	err := p.db.WithContext(ctx).
		Exec("DELETE FROM programs_exercises WHERE program_pk = ?", pk).Error
	if err != nil {
		return fmt.Errorf("failed to delete program exercise links: %w", err)
	}

	result := p.db.WithContext(ctx).Delete(&models.Program{}, pk)
	if result.Error != nil {
		return fmt.Errorf("failed to delete program: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
