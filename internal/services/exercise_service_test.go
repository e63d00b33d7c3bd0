package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/AntonMilev36/fitness-service/internal/events"
	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

func newExerciseServiceForTest(repo *mockRepository) (ExerciseService, *events.MockEventPublisher) {
	logger := testLogger()
	publisher := events.NewMockEventPublisher(logger)
	return NewExerciseService(repo, publisher, logger, validator.New()), publisher
}

func validExerciseRequest() *CreateExerciseRequest {
	return &CreateExerciseRequest{
		Name:              "Deadlift",
		Description:       strings.Repeat("Hinge at the hips and keep the bar close. ", 2),
		TutorialPhoto:     "media/deadlift.png",
		TutorialExtension: "png",
		VideoExample:      "media/deadlift.mp4",
		VideoExtension:    "mp4",
		Author:            "Ivan Milev",
		Tags:              []string{"back", "compound"},
	}
}

func TestExerciseService_Create(t *testing.T) {
	t.Run("creates exercise", func(t *testing.T) {
		repo := newMockRepository()
		service, publisher := newExerciseServiceForTest(repo)

		resp, err := service.Create(context.Background(), validExerciseRequest(), models.RoleTrainer)
		if err != nil {
			t.Fatalf("Failed to create exercise: %v", err)
		}
		if resp.Name != "Deadlift" {
			t.Errorf("Unexpected name: %q", resp.Name)
		}
		if len(resp.Tags) != 2 {
			t.Errorf("Expected 2 tags, got %v", resp.Tags)
		}

		published := publisher.Events()
		if len(published) != 1 || published[0].Type != events.EventExerciseCreated {
			t.Errorf("Expected one %s event, got %v", events.EventExerciseCreated, published)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := newMockRepository()
		service, _ := newExerciseServiceForTest(repo)

		if _, err := service.Create(context.Background(), validExerciseRequest(), models.RoleTrainer); err != nil {
			t.Fatalf("First create failed: %v", err)
		}

		_, err := service.Create(context.Background(), validExerciseRequest(), models.RoleTrainer)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Expected ConflictError, got %v", err)
		}
		if conflict.Message != "Exercise with name 'Deadlift' already exists" {
			t.Errorf("Unexpected message: %q", conflict.Message)
		}
	})

	t.Run("short description fails validation", func(t *testing.T) {
		repo := newMockRepository()
		service, _ := newExerciseServiceForTest(repo)

		req := validExerciseRequest()
		req.Description = "Too short"

		_, err := service.Create(context.Background(), req, models.RoleTrainer)
		var validationErrors ValidationErrors
		if !errors.As(err, &validationErrors) {
			t.Fatalf("Expected ValidationErrors, got %v", err)
		}
	})
}

func TestExerciseService_VideoFieldVisibility(t *testing.T) {
	repo := newMockRepository()
	service, _ := newExerciseServiceForTest(repo)

	repo.exercises[1] = &models.Exercise{
		PK:             1,
		Name:           "Deadlift",
		Description:    "A hip hinge movement.",
		PhotoTutorial:  "media/deadlift.png",
		PhotoExtension: "png",
		Video:          "media/deadlift.mp4",
		VideoExtension: "mp4",
		Author:         "Ivan Milev",
		Tags:           datatypes.JSON(`["back"]`),
	}

	t.Run("hidden for role user", func(t *testing.T) {
		resp, err := service.Get(context.Background(), 1, models.RoleUser)
		if err != nil {
			t.Fatalf("Failed to get exercise: %v", err)
		}
		if resp.Video != nil || resp.VideoExtension != nil {
			t.Error("Video fields must be hidden from role user")
		}
	})

	for _, role := range []models.UserRole{models.RoleTrainer, models.RoleSuperUser, models.RoleAdmin} {
		t.Run("visible for role "+string(role), func(t *testing.T) {
			resp, err := service.Get(context.Background(), 1, role)
			if err != nil {
				t.Fatalf("Failed to get exercise: %v", err)
			}
			if resp.Video == nil || *resp.Video != "media/deadlift.mp4" {
				t.Errorf("Expected video for role %s, got %v", role, resp.Video)
			}
			if resp.VideoExtension == nil || *resp.VideoExtension != "mp4" {
				t.Errorf("Expected video extension for role %s, got %v", role, resp.VideoExtension)
			}
		})
	}

	t.Run("listing applies the same filtering", func(t *testing.T) {
		listed, err := service.GetAll(context.Background(), models.RoleUser)
		if err != nil {
			t.Fatalf("Failed to list exercises: %v", err)
		}
		for _, resp := range listed {
			if resp.Video != nil {
				t.Error("Video fields must be hidden from role user in listings")
			}
		}
	})
}

func TestExerciseService_GetAndDelete(t *testing.T) {
	repo := newMockRepository()
	service, publisher := newExerciseServiceForTest(repo)
	ctx := context.Background()

	t.Run("empty catalogue", func(t *testing.T) {
		_, err := service.GetAll(ctx, models.RoleUser)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "There are no exercises created yet" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("missing pk", func(t *testing.T) {
		_, err := service.Get(ctx, 5, models.RoleUser)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "There is not exercise with this pk" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("delete missing pk", func(t *testing.T) {
		err := service.Delete(ctx, 5)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if notFound.Message != "There is no exercise with this pk" {
			t.Errorf("Unexpected message: %q", notFound.Message)
		}
	})

	t.Run("delete existing", func(t *testing.T) {
		repo.exercises[5] = &models.Exercise{PK: 5, Name: "Squat"}

		if err := service.Delete(ctx, 5); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		if _, ok := repo.exercises[5]; ok {
			t.Error("Exercise should be gone")
		}

		published := publisher.Events()
		if len(published) != 1 || published[0].Type != events.EventExerciseDeleted {
			t.Errorf("Expected one %s event, got %v", events.EventExerciseDeleted, published)
		}
	})
}
