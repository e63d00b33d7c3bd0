package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

// mockRepository is an in-memory Repository for testing. It mirrors the
// postgres implementation's contract: lookups miss with
// gorm.ErrRecordNotFound and unique violations surface as
// repositories.ErrDuplicateKey.
type mockRepository struct {
	users        map[uint]*models.User
	exercises    map[uint]*models.Exercise
	programs     map[uint]*models.Program
	userPrograms map[[2]uint]bool

	nextPK uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:        make(map[uint]*models.User),
		exercises:    make(map[uint]*models.Exercise),
		programs:     make(map[uint]*models.Program),
		userPrograms: make(map[[2]uint]bool),
		nextPK:       1,
	}
}

func (m *mockRepository) User() repositories.UserRepository               { return (*mockUserRepo)(m) }
func (m *mockRepository) Exercise() repositories.ExerciseRepository       { return (*mockExerciseRepo)(m) }
func (m *mockRepository) Program() repositories.ProgramRepository         { return (*mockProgramRepo)(m) }
func (m *mockRepository) UserProgram() repositories.UserProgramRepository { return (*mockUserProgramRepo)(m) }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }

func (m *mockRepository) allocPK() uint {
	pk := m.nextPK
	m.nextPK++
	return pk
}

// ===== USERS =====

type mockUserRepo mockRepository

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	if user.PK == 0 {
		user.PK = (*mockRepository)(m).allocPK()
	}
	m.users[user.PK] = user
	return nil
}

func (m *mockUserRepo) GetByPK(ctx context.Context, pk uint) (*models.User, error) {
	user, ok := m.users[pk]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, pk uint, role models.UserRole) error {
	user, ok := m.users[pk]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	return nil
}

// ===== EXERCISES =====

type mockExerciseRepo mockRepository

func (m *mockExerciseRepo) Create(ctx context.Context, exercise *models.Exercise) error {
	for _, existing := range m.exercises {
		if existing.Name == exercise.Name {
			return repositories.ErrDuplicateKey
		}
	}
	if exercise.PK == 0 {
		exercise.PK = (*mockRepository)(m).allocPK()
	}
	m.exercises[exercise.PK] = exercise
	return nil
}

func (m *mockExerciseRepo) GetByPK(ctx context.Context, pk uint) (*models.Exercise, error) {
	exercise, ok := m.exercises[pk]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return exercise, nil
}

func (m *mockExerciseRepo) GetByPKs(ctx context.Context, pks []uint) ([]models.Exercise, error) {
	result := make([]models.Exercise, 0, len(pks))
	for _, pk := range pks {
		if exercise, ok := m.exercises[pk]; ok {
			result = append(result, *exercise)
		}
	}
	return result, nil
}

func (m *mockExerciseRepo) List(ctx context.Context) ([]models.Exercise, error) {
	result := make([]models.Exercise, 0, len(m.exercises))
	for _, exercise := range m.exercises {
		result = append(result, *exercise)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PK < result[j].PK })
	return result, nil
}

func (m *mockExerciseRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, exercise := range m.exercises {
		if exercise.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockExerciseRepo) Delete(ctx context.Context, pk uint) error {
	if _, ok := m.exercises[pk]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.exercises, pk)
	return nil
}

// ===== PROGRAMS =====

type mockProgramRepo mockRepository

func (m *mockProgramRepo) Create(ctx context.Context, program *models.Program) error {
	if program.PK == 0 {
		program.PK = (*mockRepository)(m).allocPK()
	}
	m.programs[program.PK] = program
	return nil
}

func (m *mockProgramRepo) GetByPK(ctx context.Context, pk uint) (*models.Program, error) {
	program, ok := m.programs[pk]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return program, nil
}

func (m *mockProgramRepo) List(ctx context.Context) ([]models.Program, error) {
	result := make([]models.Program, 0, len(m.programs))
	for _, program := range m.programs {
		result = append(result, *program)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PK < result[j].PK })
	return result, nil
}

func (m *mockProgramRepo) Delete(ctx context.Context, pk uint) error {
	if _, ok := m.programs[pk]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.programs, pk)
	return nil
}

// ===== USER PROGRAMS =====

type mockUserProgramRepo mockRepository

func (m *mockUserProgramRepo) Create(ctx context.Context, userProgram *models.UserProgram) error {
	key := [2]uint{userProgram.UserPK, userProgram.ProgramPK}
	if m.userPrograms[key] {
		return repositories.ErrDuplicateKey
	}
	m.userPrograms[key] = true
	return nil
}

func (m *mockUserProgramRepo) Exists(ctx context.Context, userPK, programPK uint) (bool, error) {
	return m.userPrograms[[2]uint{userPK, programPK}], nil
}

func (m *mockUserProgramRepo) ProgramsForUser(ctx context.Context, userPK uint) ([]models.Program, error) {
	var result []models.Program
	for key := range m.userPrograms {
		if key[0] != userPK {
			continue
		}
		if program, ok := m.programs[key[1]]; ok {
			result = append(result, *program)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PK < result[j].PK })
	return result, nil
}

func (m *mockUserProgramRepo) ProgramForUser(ctx context.Context, userPK, programPK uint) (*models.Program, error) {
	if !m.userPrograms[[2]uint{userPK, programPK}] {
		return nil, gorm.ErrRecordNotFound
	}
	program, ok := m.programs[programPK]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return program, nil
}

func (m *mockUserProgramRepo) Delete(ctx context.Context, userPK, programPK uint) error {
	key := [2]uint{userPK, programPK}
	if !m.userPrograms[key] {
		return gorm.ErrRecordNotFound
	}
	delete(m.userPrograms, key)
	return nil
}

func (m *mockUserProgramRepo) DeleteByProgram(ctx context.Context, programPK uint) error {
	for key := range m.userPrograms {
		if key[1] == programPK {
			delete(m.userPrograms, key)
		}
	}
	return nil
}
