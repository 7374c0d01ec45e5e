package service

import (
	"strings"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users *repository.UserRepo
	roles *repository.RoleRepo
}

func NewUserService(users *repository.UserRepo, roles *repository.RoleRepo) *UserService {
	return &UserService{users: users, roles: roles}
}

func (s *UserService) FindAll() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserService) FindActive() ([]models.User, error) {
	return s.users.FindActive()
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return user, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, notFound(err, "user", 0)
	}
	return user, nil
}

func (s *UserService) Search(query string) ([]models.User, error) {
	return s.users.Search(query)
}

// isBcryptHash recognizes an already-hashed password by its prefix so
// re-saving a loaded user does not hash the hash. A raw password that
// happens to start with $2a$ would slip through; bcrypt output is the
// only thing that realistically does.
func isBcryptHash(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}

// Save persists the user, hashing PasswordHash first whenever it does
// not already look like a bcrypt hash.
func (s *UserService) Save(user *models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return validationErrorf("username cannot be blank")
	}
	if strings.TrimSpace(user.Email) == "" {
		return validationErrorf("email cannot be blank")
	}
	if user.PasswordHash == "" {
		return validationErrorf("password cannot be blank")
	}
	if user.RoleID == 0 {
		return validationErrorf("user must have a role")
	}

	if !isBcryptHash(user.PasswordHash) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
	}
	return s.users.Save(user)
}

func (s *UserService) Create(username, password, email, fullName string, roleID uint, active bool) (*models.User, error) {
	user := &models.User{
		Username:     username,
		PasswordHash: password,
		Email:        email,
		FullName:     fullName,
		RoleID:       roleID,
		IsActive:     active,
	}
	if err := s.Save(user); err != nil {
		return nil, err
	}
	return s.FindByID(user.ID)
}

func (s *UserService) Update(id uint, username, email, fullName string, roleID uint, active bool) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.Username = username
	user.Email = email
	user.FullName = fullName
	user.RoleID = roleID
	user.IsActive = active
	user.Role = models.Role{}
	if err := s.Save(user); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

func (s *UserService) ResetPassword(id uint, newPassword string) (*models.User, error) {
	if newPassword == "" {
		return nil, validationErrorf("password cannot be blank")
	}
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashed)
	return user, s.users.Save(user)
}

func (s *UserService) SetActive(id uint, active bool) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	return s.users.Delete(id)
}

// Authenticate checks username and password against an active account
// and records lastLogin on success. Every failure mode returns the
// same error so callers cannot probe for usernames.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindActiveByUsername(username)
	if err != nil {
		return nil, &AuthenticationError{}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, &AuthenticationError{}
	}
	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no
// active admin exists yet.
func (s *UserService) EnsureDefaultAdmin() error {
	count, err := s.users.CountActiveByRole(models.RoleAdmin)
	if err != nil || count > 0 {
		return err
	}
	exists, err := s.users.ExistsByUsername("admin")
	if err != nil || exists {
		return err
	}
	adminRole, err := s.roles.FindByName(models.RoleAdmin)
	if err != nil {
		return err
	}
	_, err = s.Create("admin", "admin123", "admin@perroamor.com", "System Administrator", adminRole.ID, true)
	return err
}
