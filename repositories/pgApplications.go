package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"microfin-server/db"
	"microfin-server/entities"
)

type applicationPgRepository struct {
	db db.Database
}

func NewApplicationPgRepository(database db.Database) ApplicationRepository {
	return &applicationPgRepository{db: database}
}

func (r *applicationPgRepository) Create(app *entities.Application) error {
	return r.db.GetDB().Create(app).Error
}

func (r *applicationPgRepository) GetByID(id string) (*entities.Application, error) {
	var app entities.Application
	err := r.db.GetDB().Where("id = ?", id).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationPgRepository) GetAll() ([]entities.Application, error) {
	var apps []entities.Application
	err := r.db.GetDB().Find(&apps).Error
	return apps, err
}

func (r *applicationPgRepository) UpdateFields(id string, fields map[string]interface{}) (*entities.Application, error) {
	fields["updated_at"] = time.Now().Format(time.RFC3339)

	result := r.db.GetDB().Model(&entities.Application{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Missing id is not an error for applications.
		return nil, nil
	}

	var app entities.Application
	if err := r.db.GetDB().Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationPgRepository) Filter(city, country string) ([]entities.Application, error) {
	query := r.db.GetDB().Model(&entities.Application{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var apps []entities.Application
	err := query.Find(&apps).Error
	return apps, err
}
