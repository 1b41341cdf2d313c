package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angad2212/taskify/logging"
	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

// UserService is the session/auth collaborator: it hands out the User
// values that callers turn into Actors. There is no credential
// verification here, matching the local session stub it replaces.
type UserService struct {
	Users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{Users: users}
}

// Register creates a new user with the given role. Roles are fixed at
// creation; there is no role-change operation.
func (s *UserService) Register(email, name string, role models.Role) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("name is required")
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		return nil, models.NewValidationError("unknown role: %s", role)
	}

	if _, err := s.Users.GetByEmail(email); err == nil {
		return nil, models.NewValidationError("user with email %s already exists", email)
	}

	user := &models.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
		Role:  role,
	}
	if err := s.Users.Upsert(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %v", err)
	}

	logging.Logger.Infof("Registered user %s (%s) with role %s", user.Name, user.Email, user.Role)
	return user, nil
}

// Login looks the user up by email, creating a stub account on first
// login with the name taken from the email's local part.
func (s *UserService) Login(email string, role models.Role) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.NewValidationError("a valid email is required")
	}

	if user, err := s.Users.GetByEmail(email); err == nil {
		return user, nil
	}

	name := email[:strings.Index(email, "@")]
	return s.Register(email, name, role)
}

// GetMembers lists every member-role user, for the project creation form.
func (s *UserService) GetMembers() ([]models.User, error) {
	return s.Users.ListByRole(models.RoleMember)
}
