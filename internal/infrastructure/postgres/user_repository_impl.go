package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roni9843/sonakanda-backend/internal/domain/entity"
	"github.com/roni9843/sonakanda-backend/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// userColumns is every column except password_hash; profile reads never
// pull the hash out of the store.
const userColumns = `id, name_en, nid_number, mobile_number, balance,
	name_bn, date_of_birth, emergency_mobile_number, blood_group,
	father_name, mother_name, school_or_college_name, current_profession,
	birthplace, permanent_address, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (
			name_en, nid_number, mobile_number, password_hash, balance,
			name_bn, date_of_birth, emergency_mobile_number, blood_group,
			father_name, mother_name, school_or_college_name, current_profession,
			birthplace, permanent_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`, u.NameEN, u.NIDNumber, u.MobileNumber, u.Password, u.Balance,
		u.NameBN, u.DateOfBirth, u.EmergencyMobileNumber, u.BloodGroup,
		u.FatherName, u.MotherName, u.SchoolOrCollegeName, u.CurrentProfession,
		u.Birthplace, u.PermanentAddress)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return translateUnique(err)
	}
	return nil
}

// translateUnique maps a unique-constraint violation to the matching
// duplicate sentinel so a lost check-then-insert race still becomes a 409.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_mobile_number_key":
			return repository.ErrDuplicateMobile
		case "users_nid_number_key":
			return repository.ErrDuplicateNID
		}
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByMobile(ctx context.Context, mobile string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`, password_hash
		FROM users
		WHERE mobile_number = $1
	`, mobile)

	if err := row.Scan(&u.ID, &u.NameEN, &u.NIDNumber, &u.MobileNumber, &u.Balance,
		&u.NameBN, &u.DateOfBirth, &u.EmergencyMobileNumber, &u.BloodGroup,
		&u.FatherName, &u.MotherName, &u.SchoolOrCollegeName, &u.CurrentProfession,
		&u.Birthplace, &u.PermanentAddress, &u.CreatedAt, &u.UpdatedAt,
		&u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByMobileOrNID(ctx context.Context, mobile, nid string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE mobile_number = $1 OR nid_number = $2
		LIMIT 1
	`, mobile, nid)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.NameEN, &u.NIDNumber, &u.MobileNumber, &u.Balance,
		&u.NameBN, &u.DateOfBirth, &u.EmergencyMobileNumber, &u.BloodGroup,
		&u.FatherName, &u.MotherName, &u.SchoolOrCollegeName, &u.CurrentProfession,
		&u.Birthplace, &u.PermanentAddress, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
