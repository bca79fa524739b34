package usecases

import (
	"fmt"

	"microfin-server/entities"
	"microfin-server/repositories"
)

type ApplicationUseCase struct {
	AppRepo repositories.ApplicationRepository
}

func NewApplicationUseCase(appRepo repositories.ApplicationRepository) *ApplicationUseCase {
	return &ApplicationUseCase{AppRepo: appRepo}
}

func (uc *ApplicationUseCase) Create(name, city, country string) (*entities.Application, error) {
	app := &entities.Application{
		Name:    name,
		City:    city,
		Country: country,
	}
	if err := uc.AppRepo.Create(app); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	return app, nil
}

// UpdateStatus overwrites the status field. Status values are free-form;
// a missing id yields a nil record, not an error.
func (uc *ApplicationUseCase) UpdateStatus(id, status string) (*entities.Application, error) {
	return uc.AppRepo.UpdateFields(id, map[string]interface{}{"status": status})
}

// AttachToken stores a disbursement token on the record. Same missing-id
// semantics as UpdateStatus.
func (uc *ApplicationUseCase) AttachToken(id, token string) (*entities.Application, error) {
	return uc.AppRepo.UpdateFields(id, map[string]interface{}{"token": token})
}

// Filter returns applications matching every provided field exactly.
// Omitted fields are unconstrained; no fields means all records.
func (uc *ApplicationUseCase) Filter(city, country string) ([]entities.Application, error) {
	return uc.AppRepo.Filter(city, country)
}
