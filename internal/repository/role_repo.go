package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type RoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) FindAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("name asc").Find(&roles).Error
	return roles, err
}

func (r *RoleRepo) FindActive() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&roles).Error
	return roles, err
}

func (r *RoleRepo) FindByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepo) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *RoleRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Count(&count).Error
	return count, err
}

func (r *RoleRepo) Save(role *models.Role) error {
	return r.db.Save(role).Error
}
