package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microfin-server/repositories"
)

func newTodoUseCase(t *testing.T) *TodoUseCase {
	t.Helper()
	return NewTodoUseCase(repositories.NewTodoPgRepository(newTestDB(t)))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodo(t *testing.T) {
	uc := newTodoUseCase(t)

	todo, err := uc.Create("buy milk")
	require.NoError(t, err)
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "buy milk", todo.Text)
	assert.False(t, todo.Completed)
}

func TestCreateTodoMissingText(t *testing.T) {
	uc := newTodoUseCase(t)

	_, err := uc.Create("")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestListTodos(t *testing.T) {
	uc := newTodoUseCase(t)

	todos, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, todos)

	_, err = uc.Create("first")
	require.NoError(t, err)
	_, err = uc.Create("second")
	require.NoError(t, err)

	todos, err = uc.List()
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestUpdateTodoCompletedOnly(t *testing.T) {
	uc := newTodoUseCase(t)
	todo, err := uc.Create("buy milk")
	require.NoError(t, err)

	updated, err := uc.Update(todo.ID, TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Text)
	assert.True(t, updated.Completed)
}

func TestUpdateTodoTextOnly(t *testing.T) {
	uc := newTodoUseCase(t)
	todo, err := uc.Create("buy milk")
	require.NoError(t, err)

	_, err = uc.Update(todo.ID, TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	updated, err := uc.Update(todo.ID, TodoPatch{Text: strPtr("buy oat milk")})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Text)
	assert.True(t, updated.Completed, "text-only patch must keep completed")
}

func TestUpdateTodoExplicitFalse(t *testing.T) {
	uc := newTodoUseCase(t)
	todo, err := uc.Create("buy milk")
	require.NoError(t, err)

	_, err = uc.Update(todo.ID, TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	// An explicit false overwrites; an absent field would not.
	updated, err := uc.Update(todo.ID, TodoPatch{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestUpdateTodoNotFound(t *testing.T) {
	uc := newTodoUseCase(t)

	_, err := uc.Update("no-such-id", TodoPatch{Text: strPtr("x")})
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodoTwice(t *testing.T) {
	uc := newTodoUseCase(t)
	todo, err := uc.Create("buy milk")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(todo.ID))

	err = uc.Delete(todo.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}
