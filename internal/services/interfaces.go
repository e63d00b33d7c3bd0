package services

import (
	"context"
	"encoding/json"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Request shapes live next to their validation rules.
type ValidationErrors = validator.ValidationErrors

type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type CreateExerciseRequest = validator.ExerciseCreateRequest
type CreateProgramRequest = validator.ProgramCreateRequest

// ===== RESPONSE DTOs =====

type TokenResponse struct {
	Token string `json:"token"`
}

// ExerciseResponse is the role-shaped view of an exercise: callers with
// role `user` never see the video fields, every higher role does.
type ExerciseResponse struct {
	PK             uint     `json:"pk"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PhotoTutorial  string   `json:"photo_tutorial"`
	PhotoExtension string   `json:"photo_extension"`
	Video          *string  `json:"video,omitempty"`
	VideoExtension *string  `json:"video_extension,omitempty"`
	Author         string   `json:"author"`
	Tags           []string `json:"tags,omitempty"`
}

// NewExerciseResponse shapes an exercise for the caller's role.
func NewExerciseResponse(exercise *models.Exercise, role models.UserRole) *ExerciseResponse {
	resp := &ExerciseResponse{
		PK:             exercise.PK,
		Name:           exercise.Name,
		Description:    exercise.Description,
		PhotoTutorial:  exercise.PhotoTutorial,
		PhotoExtension: exercise.PhotoExtension,
		Author:         exercise.Author,
	}

	if len(exercise.Tags) > 0 {
		// Tags are stored as a jsonb string array; a decode failure just
		// leaves them off the response.
		_ = json.Unmarshal(exercise.Tags, &resp.Tags)
	}

	if role != models.RoleUser {
		resp.Video = &exercise.Video
		resp.VideoExtension = &exercise.VideoExtension
	}

	return resp
}

type ProgramResponse struct {
	PK        uint                `json:"pk"`
	Title     string              `json:"title"`
	Exercises []*ExerciseResponse `json:"exercises"`
}

// NewProgramResponse shapes a program, applying the same role-based field
// filtering to its nested exercises.
func NewProgramResponse(program *models.Program, role models.UserRole) *ProgramResponse {
	exercises := make([]*ExerciseResponse, 0, len(program.Exercises))
	for i := range program.Exercises {
		exercises = append(exercises, NewExerciseResponse(&program.Exercises[i], role))
	}
	return &ProgramResponse{
		PK:        program.PK,
		Title:     program.Title,
		Exercises: exercises,
	}
}

// ===== SERVICE INTERFACES =====

// UserService covers registration, login and the caller's saved-program
// list. The list operations are scoped to the authenticated user; they can
// never touch another user's rows.
type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)

	AddProgram(ctx context.Context, user *models.User, programPK uint) error
	GetAllUserPrograms(ctx context.Context, user *models.User) ([]*ProgramResponse, error)
	GetSpecificProgram(ctx context.Context, user *models.User, programPK uint) (*ProgramResponse, error)
	DeleteProgram(ctx context.Context, user *models.User, programPK uint) error
}

type ExerciseService interface {
	Create(ctx context.Context, req *CreateExerciseRequest, callerRole models.UserRole) (*ExerciseResponse, error)
	GetAll(ctx context.Context, callerRole models.UserRole) ([]*ExerciseResponse, error)
	Get(ctx context.Context, pk uint, callerRole models.UserRole) (*ExerciseResponse, error)
	Delete(ctx context.Context, pk uint) error
}

type ProgramService interface {
	Create(ctx context.Context, req *CreateProgramRequest, callerRole models.UserRole) (*ProgramResponse, error)
	GetAll(ctx context.Context, callerRole models.UserRole) ([]*ProgramResponse, error)
	Get(ctx context.Context, pk uint, callerRole models.UserRole) (*ProgramResponse, error)
	Delete(ctx context.Context, pk uint) error
}

// TrainerService is the role state machine: user -> trainer and
// trainer -> user, nothing else.
type TrainerService interface {
	PromoteToTrainer(ctx context.Context, userPK uint) error
	DemoteToUser(ctx context.Context, trainerPK uint) error
}

// ReportService produces the admin xlsx export of the exercise catalogue.
type ReportService interface {
	ExportExercises(ctx context.Context) ([]byte, error)
}

// ServiceManager wires and owns all services.
type ServiceManager interface {
	User() UserService
	Exercise() ExerciseService
	Program() ProgramService
	Trainer() TrainerService
	Token() TokenService
	Report() ReportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
