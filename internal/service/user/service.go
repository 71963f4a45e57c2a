package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when username/password do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles account registration and credential checks. Token issuing
// and authorization middleware live outside this core.
type Service struct {
	users       userRepo
	customers   customerRepo
	passwordMin int
}

type userRepo interface {
	Insert(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.User, error)
	RemoveByID(ctx context.Context, id int64) error
	RemoveByUsername(ctx context.Context, username string) error
}

type customerRepo interface {
	Insert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

// New creates a Service with sane defaults.
func New(users userRepo, customers customerRepo) *Service {
	return &Service{users: users, customers: customers, passwordMin: 8}
}

// RegisterInput captures fields expected by the registration endpoint.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Register creates a login account plus its linked customer record. A taken
// username fails with domain.ErrConflict before anything is written.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", domain.ErrMalformedRequest)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrMalformedRequest, s.passwordMin)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cust, err := s.customers.Insert(ctx, domain.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	})
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hashed),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		CustomerID:   cust.ID,
		IsAdmin:      in.IsAdmin,
	})
}

// Authenticate validates credentials and returns the account.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UpdatePassword re-hashes and stores a new password for the account.
func (s *Service) UpdatePassword(ctx context.Context, id int64, password string) (*domain.User, error) {
	password = strings.TrimSpace(password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrMalformedRequest, s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Update(ctx, id, sqlgen.Fields{}.Set("passwordHash", string(hashed)))
}

// Remove deletes the account by id.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.users.RemoveByID(ctx, id)
}
