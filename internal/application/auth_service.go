package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/roni9843/sonakanda-backend/internal/domain/entity"
	repo "github.com/roni9843/sonakanda-backend/internal/domain/repository"
	"github.com/roni9843/sonakanda-backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ConflictError reports which unique fields of a registration collided with
// an existing user.
type ConflictError struct {
	MobileNumber bool
	NIDNumber    bool
}

func (e *ConflictError) Error() string {
	return "user already exists with provided credentials"
}

// Fields returns the per-field messages for the error envelope.
func (e *ConflictError) Fields() map[string]string {
	out := make(map[string]string, 2)
	if e.MobileNumber {
		out["mobile_number"] = "Mobile number already in use"
	}
	if e.NIDNumber {
		out["nid_number"] = "NID number already in use"
	}
	return out
}

// Service implements the register/login/profile workflow over the user
// repository. It holds no per-request state and never caches users.
type Service struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *Service {
	return &Service{Repo: r, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// RegisterInput carries the registration payload after boundary validation.
// Required fields are guaranteed non-empty by the handler.
type RegisterInput struct {
	NameEN       string
	NIDNumber    string
	MobileNumber string
	Password     string

	NameBN                string
	DateOfBirth           string
	EmergencyMobileNumber string
	BloodGroup            string
	FatherName            string
	MotherName            string
	SchoolOrCollegeName   string
	CurrentProfession     string

	Birthplace       *entity.Birthplace
	PermanentAddress *entity.PermanentAddress
}

// Register creates a new user with a hashed password. The pre-check against
// existing mobile/nid exists for precise conflict messages; the store's
// unique constraints remain the authoritative guard, so a duplicate insert
// that slips past the check still comes back as a ConflictError.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	mobile := strings.TrimSpace(in.MobileNumber)
	nid := strings.TrimSpace(in.NIDNumber)

	existing, err := s.Repo.GetByMobileOrNID(ctx, mobile, nid)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{
			MobileNumber: existing.MobileNumber == mobile,
			NIDNumber:    existing.NIDNumber == nid,
		}
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		NameEN:                strings.TrimSpace(in.NameEN),
		NIDNumber:             nid,
		MobileNumber:          mobile,
		Password:              hash,
		NameBN:                strings.TrimSpace(in.NameBN),
		DateOfBirth:           in.DateOfBirth,
		EmergencyMobileNumber: strings.TrimSpace(in.EmergencyMobileNumber),
		BloodGroup:            strings.TrimSpace(in.BloodGroup),
		FatherName:            strings.TrimSpace(in.FatherName),
		MotherName:            strings.TrimSpace(in.MotherName),
		SchoolOrCollegeName:   strings.TrimSpace(in.SchoolOrCollegeName),
		CurrentProfession:     strings.TrimSpace(in.CurrentProfession),
		Birthplace:            in.Birthplace,
		PermanentAddress:      in.PermanentAddress,
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		// Lost the check-then-insert race: the constraint tells us which
		// field collided.
		switch {
		case errors.Is(err, repo.ErrDuplicateMobile):
			return nil, &ConflictError{MobileNumber: true}
		case errors.Is(err, repo.ErrDuplicateNID):
			return nil, &ConflictError{NIDNumber: true}
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("mobile_number", mobile).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// Login authenticates by mobile number and password and issues a signed
// token. Unknown user and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, mobile, password string) (string, time.Time, *entity.User, error) {
	u, err := s.Repo.GetByMobile(ctx, strings.TrimSpace(mobile))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("login lookup failed")
		}
		return "", time.Time{}, nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, nil, err
	}
	return token, exp, u, nil
}

// GetProfile loads the authenticated user. The repository never selects the
// password column for this lookup.
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// The user may have been deleted after the token was issued.
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
