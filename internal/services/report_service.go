package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

// reportService builds the admin xlsx export of the exercise catalogue.
type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

const exercisesSheet = "Exercises"

func (s *reportService) ExportExercises(ctx context.Context) ([]byte, error) {
	exercises, err := s.repo.Exercise().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, NewNotFoundError("exercise", "There are no exercises created yet")
	}

	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(exercisesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"PK", "Name", "Author", "Photo", "Video", "Description"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(exercisesSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, exercise := range exercises {
		values := []any{
			exercise.PK,
			exercise.Name,
			exercise.Author,
			exercise.PhotoTutorial,
			exercise.Video,
			strings.TrimSpace(exercise.Description),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(exercisesSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	s.logger.Info("exercise report exported", "rows", len(exercises))
	return buffer.Bytes(), nil
}
