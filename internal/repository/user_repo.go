package repository

import (
	"time"

	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").Order("full_name asc").Find(&users).Error
	return users, err
}

func (r *UserRepo) FindActive() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").
		Where("is_active = ?", true).
		Order("full_name asc").
		Find(&users).Error
	return users, err
}

func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindActiveByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByRoleID(roleID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").
		Where("role_id = ? AND is_active = ?", roleID, true).
		Find(&users).Error
	return users, err
}

func (r *UserRepo) Search(query string) ([]models.User, error) {
	like := "%" + query + "%"
	var users []models.User
	err := r.db.Preload("Role").
		Where("(LOWER(full_name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)) AND is_active = ?",
			like, like, like, true).
		Find(&users).Error
	return users, err
}

func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepo) CountActiveByRole(roleName string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ? AND users.is_active = ?", roleName, true).
		Count(&count).Error
	return count, err
}

func (r *UserRepo) Save(user *models.User) error {
	return r.db.Omit("Role").Save(user).Error
}

func (r *UserRepo) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

func (r *UserRepo) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}
