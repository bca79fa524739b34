package usecases

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"microfin-server/entities"
	"microfin-server/repositories"
)

type TodoUseCase struct {
	TodoRepo repositories.TodoRepository
}

func NewTodoUseCase(todoRepo repositories.TodoRepository) *TodoUseCase {
	return &TodoUseCase{TodoRepo: todoRepo}
}

// TodoPatch is a partial update: only supplied fields overwrite stored
// values. Pointers distinguish "absent" from an explicit false/empty.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

func (uc *TodoUseCase) List() ([]entities.Todo, error) {
	return uc.TodoRepo.GetAll()
}

func (uc *TodoUseCase) Create(text string) (*entities.Todo, error) {
	if text == "" {
		return nil, ErrMissingFields
	}

	todo := &entities.Todo{Text: text, Completed: false}
	if err := uc.TodoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

func (uc *TodoUseCase) Update(id string, patch TodoPatch) (*entities.Todo, error) {
	if id == "" {
		return nil, ErrTodoNotFound
	}

	existing, err := uc.TodoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to fetch todo: %w", err)
	}

	if patch.Text != nil && *patch.Text != "" {
		existing.Text = *patch.Text
	}
	if patch.Completed != nil {
		existing.Completed = *patch.Completed
	}

	if err := uc.TodoRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return existing, nil
}

func (uc *TodoUseCase) Delete(id string) error {
	if id == "" {
		return ErrTodoNotFound
	}

	// Check existence first so a repeat delete reports not-found.
	if _, err := uc.TodoRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to fetch todo: %w", err)
	}

	if err := uc.TodoRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
