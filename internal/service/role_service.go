package service

import (
	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
)

type RoleService struct {
	roles *repository.RoleRepo
}

func NewRoleService(roles *repository.RoleRepo) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) FindAll() ([]models.Role, error) {
	return s.roles.FindAll()
}

func (s *RoleService) FindByID(id uint) (*models.Role, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		return nil, notFound(err, "role", id)
	}
	return role, nil
}

func (s *RoleService) FindByName(name string) (*models.Role, error) {
	role, err := s.roles.FindByName(name)
	if err != nil {
		return nil, notFound(err, "role", 0)
	}
	return role, nil
}

// EnsureDefaults seeds the fixed role set on an empty table.
func (s *RoleService) EnsureDefaults() error {
	count, err := s.roles.Count()
	if err != nil || count > 0 {
		return err
	}
	defaults := []models.Role{
		{Name: models.RoleAdmin, Description: "Full system access"},
		{Name: models.RoleManager, Description: "Inventory and reporting access"},
		{Name: models.RoleEmployee, Description: "Sales-only access"},
	}
	for i := range defaults {
		exists, err := s.roles.ExistsByName(defaults[i].Name)
		if err != nil {
			return err
		}
		if !exists {
			if err := s.roles.Save(&defaults[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
