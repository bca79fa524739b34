package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microfin-server/repositories"
)

func newApplicationUseCase(t *testing.T) *ApplicationUseCase {
	t.Helper()
	return NewApplicationUseCase(repositories.NewApplicationPgRepository(newTestDB(t)))
}

func TestCreateApplication(t *testing.T) {
	uc := newApplicationUseCase(t)

	app, err := uc.Create("Alice", "Nairobi", "Kenya")
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "pending", app.Status)
	assert.Empty(t, app.Token)
}

func TestUpdateStatus(t *testing.T) {
	uc := newApplicationUseCase(t)
	app, err := uc.Create("Alice", "Nairobi", "Kenya")
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(app.ID, "approved")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "approved", updated.Status)
	assert.Equal(t, "Nairobi", updated.City)
}

func TestUpdateStatusMissingID(t *testing.T) {
	uc := newApplicationUseCase(t)

	// A missing id yields a nil record, not an error.
	updated, err := uc.UpdateStatus("no-such-id", "approved")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestStatusIsFreeForm(t *testing.T) {
	uc := newApplicationUseCase(t)
	app, err := uc.Create("Alice", "Nairobi", "Kenya")
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(app.ID, "weird-intermediate-state")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "weird-intermediate-state", updated.Status)
}

func TestAttachToken(t *testing.T) {
	uc := newApplicationUseCase(t)
	app, err := uc.Create("Alice", "Nairobi", "Kenya")
	require.NoError(t, err)

	updated, err := uc.AttachToken(app.ID, "disb-token-1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "disb-token-1", updated.Token)
	assert.Equal(t, "pending", updated.Status, "token attach must not touch status")
}

func TestAttachTokenMissingID(t *testing.T) {
	uc := newApplicationUseCase(t)

	updated, err := uc.AttachToken("no-such-id", "disb-token-1")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestFilter(t *testing.T) {
	uc := newApplicationUseCase(t)

	_, err := uc.Create("Alice", "Nairobi", "Kenya")
	require.NoError(t, err)
	_, err = uc.Create("Bob", "Mombasa", "Kenya")
	require.NoError(t, err)
	_, err = uc.Create("Carol", "Lagos", "Nigeria")
	require.NoError(t, err)

	all, err := uc.Filter("", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCity, err := uc.Filter("Nairobi", "")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Alice", byCity[0].Name)

	byCountry, err := uc.Filter("", "Kenya")
	require.NoError(t, err)
	assert.Len(t, byCountry, 2)

	both, err := uc.Filter("Mombasa", "Kenya")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Bob", both[0].Name)

	none, err := uc.Filter("Nairobi", "Nigeria")
	require.NoError(t, err)
	assert.Empty(t, none)
}
