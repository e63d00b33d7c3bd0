package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/repositories"
)

const uniqueViolationCode = "23505"

// translateError maps driver-level errors to repository sentinels so that
// services never depend on Postgres error codes. Unique violations matter
// here: concurrent writers can slip past service-level existence checks and
// only the database constraint catches them.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.ErrDuplicateKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return repositories.ErrDuplicateKey
	}

	return err
}
