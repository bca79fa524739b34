package repositories

import "microfin-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

type TodoRepository interface {
	Create(todo *entities.Todo) error
	GetByID(id string) (*entities.Todo, error)
	GetAll() ([]entities.Todo, error)
	Update(todo *entities.Todo) error
	Delete(id string) error
}

type ApplicationRepository interface {
	Create(app *entities.Application) error
	GetByID(id string) (*entities.Application, error)
	GetAll() ([]entities.Application, error)
	// UpdateFields applies a partial update to the record identified by id
	// and returns the updated record. A missing id yields (nil, nil), not an
	// error.
	UpdateFields(id string, fields map[string]interface{}) (*entities.Application, error)
	Filter(city, country string) ([]entities.Application, error)
}
