package repositories

import (
	"time"

	"microfin-server/db"
	"microfin-server/entities"
)

type todoPgRepository struct {
	db db.Database
}

func NewTodoPgRepository(database db.Database) TodoRepository {
	return &todoPgRepository{db: database}
}

func (r *todoPgRepository) Create(todo *entities.Todo) error {
	return r.db.GetDB().Create(todo).Error
}

func (r *todoPgRepository) GetByID(id string) (*entities.Todo, error) {
	var todo entities.Todo
	err := r.db.GetDB().Where("id = ?", id).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoPgRepository) GetAll() ([]entities.Todo, error) {
	var todos []entities.Todo
	err := r.db.GetDB().Find(&todos).Error
	return todos, err
}

func (r *todoPgRepository) Update(todo *entities.Todo) error {
	todo.UpdatedAt = time.Now().Format(time.RFC3339)
	// Save writes every column, so an explicit completed=false sticks.
	return r.db.GetDB().Save(todo).Error
}

func (r *todoPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Todo{}).Error
}
