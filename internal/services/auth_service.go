package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
	"github.com/yukikurage/todo-tracker-api/internal/constants"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"github.com/yukikurage/todo-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken = errors.NewAlreadyExists(nil, "User Email already exist.")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.NewUnauthorized(nil, "Invalid Email or Password")
	ErrNameRequired       = errors.NewNotValid(nil, "Name is required")
	ErrEmailRequired      = errors.NewNotValid(nil, "Email is required")
	ErrPasswordRequired   = errors.NewNotValid(nil, "Password is required")
	ErrPasswordTooLong    = errors.NewNotValid(nil, "Password must be at most 72 bytes")
	ErrNameTooLong        = errors.NewNotValid(nil, "Name must be at most 255 characters")
	ErrEmailTooLong       = errors.NewNotValid(nil, "Email must be at most 255 characters")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
	clock    clock.Clock
	hashCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenIssuer, clk clock.Clock) *AuthService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		clock:    clk,
		hashCost: constants.PasswordHashCost,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	switch {
	case name == "":
		return nil, ErrNameRequired
	case email == "":
		return nil, ErrEmailRequired
	case input.Password == "":
		return nil, ErrPasswordRequired
	case len(input.Password) > constants.MaxPasswordBytes:
		return nil, ErrPasswordTooLong
	case utf8.RuneCountInString(name) > constants.MaxTextLength:
		return nil, ErrNameTooLong
	case utf8.RuneCountInString(email) > constants.MaxTextLength:
		return nil, ErrEmailTooLong
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, errors.NotFound) {
		return nil, errors.Annotate(err, "failed to check email")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, errors.Annotate(err, "failed to hash password")
	}

	now := s.clock.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, errors.AlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Annotate(err, "failed to create user")
	}

	log.Infof("registered user %s", user.ID)
	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User  *models.User
	Token string
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Annotate(err, "failed to find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Verify returns the claims of a valid session token.
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}

// NormalizeEmail lower-cases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
