package validator

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,max=225,password_strength"`
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
}

// LoginRequest is the payload for user login. Password strength is checked
// here too so that obviously malformed credentials are rejected before any
// lookup happens.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=225,password_strength"`
}

// ExerciseCreateRequest is the payload for trainers creating exercises.
// Media fields reference already uploaded assets.
type ExerciseCreateRequest struct {
	Name              string   `json:"name" validate:"required,min=4,max=50"`
	Description       string   `json:"description" validate:"required,min=50"`
	TutorialPhoto     string   `json:"tutorial_photo" validate:"required"`
	TutorialExtension string   `json:"tutorial_extension" validate:"required"`
	VideoExample      string   `json:"video_example" validate:"required"`
	VideoExtension    string   `json:"video_extension" validate:"required"`
	Author            string   `json:"author" validate:"required,full_name"`
	Tags              []string `json:"tags" validate:"omitempty,max=10,dive,max=50"`
}

// ProgramExerciseRequest references an existing exercise by primary key when
// composing a program.
type ProgramExerciseRequest struct {
	PK uint `json:"pk" validate:"required"`
}

// ProgramCreateRequest is the payload for trainers creating programs.
type ProgramCreateRequest struct {
	Title     string                   `json:"title" validate:"required,min=3,max=50"`
	Exercises []ProgramExerciseRequest `json:"exercises" validate:"required,dive"`
}
