package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID       = errors.New("user ID cannot be empty")
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyEmail        = errors.New("email cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
	ErrInvalidRole       = errors.New("role must be Instructor or Student")
)

// Role identifies the kind of account a user registered as.
// It is fixed at registration and never changed by this service.
type Role string

const (
	RoleInstructor Role = "Instructor"
	RoleStudent    Role = "Student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleInstructor || r == RoleStudent
}

// User represents a registered user of the Learnly platform.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"` // Plaintext password, used temporarily during registration
	PasswordHash string    `json:"-"` // Never expose the password hash in JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email, plaintext password
// and role. It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, email, password string, role Role) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password, // Plaintext password - must be hashed before storage
		Role:      role,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Validation is presence-only: the service does not enforce email shape or
// password strength beyond non-emptiness.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	// During registration the user carries a plaintext password which is hashed
	// before storage; existing users loaded from the store carry only the hash.
	if u.Password == "" && u.PasswordHash == "" {
		return ErrEmptyPassword
	}

	return nil
}
