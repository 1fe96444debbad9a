package repositories

import (
	"errors"
	"time"

	"daylist-app/daylist/database"
	"daylist-app/daylist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *database.Database
}

func NewGormUserRepository(db *database.Database) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(user models.User) (models.User, error) {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := r.db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *GormUserRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.DB.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) EnsureUser(id uuid.UUID) error {
	user := models.User{ID: id}
	return r.db.DB.Where("id = ?", id).FirstOrCreate(&user).Error
}
