package services

import (
	"context"
	"errors"
	"testing"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

func newProgramServiceForTest(repo *mockRepository) (ProgramService, *events.MockEventPublisher) {
	logger := testLogger()
	publisher := events.NewMockEventPublisher(logger)
	return NewProgramService(repo, publisher, logger, validator.New()), publisher
}

func TestProgramService_Create(t *testing.T) {
	t.Run("creates program with its exercises", func(t *testing.T) {
		repo := newMockRepository()
		service, publisher := newProgramServiceForTest(repo)

		repo.exercises[1] = &models.Exercise{PK: 1, Name: "Squat"}
		repo.exercises[2] = &models.Exercise{PK: 2, Name: "Deadlift"}

		resp, err := service.Create(context.Background(), &CreateProgramRequest{
			Title: "Leg Day",
			Exercises: []validator.ProgramExerciseRequest{
				{PK: 1}, {PK: 2},
			},
		}, models.RoleTrainer)
		if err != nil {
			t.Fatalf("Failed to create program: %v", err)
		}
		if resp.Title != "Leg Day" {
			t.Errorf("Unexpected title: %q", resp.Title)
		}
		if len(resp.Exercises) != 2 {
			t.Errorf("Expected 2 exercises, got %d", len(resp.Exercises))
		}

		published := publisher.Events()
		if len(published) != 1 || published[0].Type != events.EventProgramCreated {
			t.Errorf("Expected one %s event, got %v", events.EventProgramCreated, published)
		}
	})

	t.Run("missing exercise writes nothing", func(t *testing.T) {
		repo := newMockRepository()
		service, _ := newProgramServiceForTest(repo)

		repo.exercises[1] = &models.Exercise{PK: 1, Name: "Squat"}

		_, err := service.Create(context.Background(), &CreateProgramRequest{
			Title: "Leg Day",
			Exercises: []validator.ProgramExerciseRequest{
				{PK: 1}, {PK: 42},
			},
		}, models.RoleTrainer)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "Exercise with pk=42 does not exist" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
		if len(repo.programs) != 0 {
			t.Error("No program rows may be written when an exercise is missing")
		}
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		repo := newMockRepository()
		service, _ := newProgramServiceForTest(repo)

		_, err := service.Create(context.Background(), &CreateProgramRequest{
			Exercises: []validator.ProgramExerciseRequest{{PK: 1}},
		}, models.RoleTrainer)
		var validationErrors ValidationErrors
		if !errors.As(err, &validationErrors) {
			t.Fatalf("Expected ValidationErrors, got %v", err)
		}
	})
}

func TestProgramService_GetAndList(t *testing.T) {
	repo := newMockRepository()
	service, _ := newProgramServiceForTest(repo)
	ctx := context.Background()

	t.Run("empty catalogue", func(t *testing.T) {
		_, err := service.GetAll(ctx, models.RoleUser)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "There are no programs created yet!" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("missing pk", func(t *testing.T) {
		_, err := service.Get(ctx, 9, models.RoleUser)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "This program does not exist" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("nested exercises are role-filtered", func(t *testing.T) {
		repo.programs[9] = &models.Program{
			PK:    9,
			Title: "Full Body",
			Exercises: []models.Exercise{
				{PK: 1, Name: "Squat", Video: "media/squat.mp4", VideoExtension: "mp4"},
			},
		}

		asUser, err := service.Get(ctx, 9, models.RoleUser)
		if err != nil {
			t.Fatalf("Failed to get program: %v", err)
		}
		if asUser.Exercises[0].Video != nil {
			t.Error("Video fields must be hidden from role user")
		}

		asTrainer, err := service.Get(ctx, 9, models.RoleTrainer)
		if err != nil {
			t.Fatalf("Failed to get program: %v", err)
		}
		if asTrainer.Exercises[0].Video == nil {
			t.Error("Video fields must be visible to trainers")
		}
	})
}

func TestProgramService_Delete(t *testing.T) {
	repo := newMockRepository()
	service, publisher := newProgramServiceForTest(repo)
	ctx := context.Background()

	t.Run("missing pk", func(t *testing.T) {
		err := service.Delete(ctx, 3)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "Program with pk=3 does not exist" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("cascades saved-program rows", func(t *testing.T) {
		repo.programs[3] = &models.Program{PK: 3, Title: "Push Day"}
		repo.userPrograms[[2]uint{1, 3}] = true
		repo.userPrograms[[2]uint{2, 3}] = true

		if err := service.Delete(ctx, 3); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		if _, ok := repo.programs[3]; ok {
			t.Error("Program should be gone")
		}
		if len(repo.userPrograms) != 0 {
			t.Error("Saved-program rows must not outlive the program")
		}

		published := publisher.Events()
		if len(published) != 1 || published[0].Type != events.EventProgramDeleted {
			t.Errorf("Expected one %s event, got %v", events.EventProgramDeleted, published)
		}
	})
}
