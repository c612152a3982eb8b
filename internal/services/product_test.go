package services

import (
	"net/http"
	"testing"

	"vendlink/internal/apperr"
	"vendlink/internal/models"
	"vendlink/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*memory.Store, *ProductService, *models.User, *models.User) {
	t.Helper()
	store := memory.NewStore()

	approved := &models.User{Email: "approved@example.com", Username: "approved", Password: "x", Approved: true}
	require.NoError(t, store.Users().Create(approved))

	pending := &models.User{Email: "pending@example.com", Username: "pending", Password: "x"}
	require.NoError(t, store.Users().Create(pending))

	return store, NewProductService(store.Products()), approved, pending
}

func TestCreateRequiresApproval(t *testing.T) {
	_, svc, approved, pending := newProductFixture(t)

	_, err := svc.Create(pending, ProductInput{Name: "lamp", Price: 30})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.Status(err))

	product, err := svc.Create(approved, ProductInput{Name: "lamp", Price: 30})
	require.NoError(t, err)
	assert.Equal(t, approved.ID, product.UserID)
	assert.True(t, product.IsAvailable)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	store, svc, approved, _ := newProductFixture(t)

	other := &models.User{Email: "other@example.com", Username: "other", Password: "x", Approved: true}
	require.NoError(t, store.Users().Create(other))

	product, err := svc.Create(approved, ProductInput{Name: "lamp", Price: 30})
	require.NoError(t, err)

	_, err = svc.Update(other, product.ID, ProductInput{Name: "mine now", Price: 1})
	assert.Equal(t, http.StatusForbidden, apperr.Status(err))

	updated, err := svc.Update(approved, product.ID, ProductInput{Name: "desk lamp", Price: 35})
	require.NoError(t, err)
	assert.Equal(t, "desk lamp", updated.Name)
	assert.Equal(t, 35, updated.Price)
}

func TestUpdateMissingProductNotFound(t *testing.T) {
	_, svc, approved, pending := newProductFixture(t)

	// Not-found only surfaces for callers that pass the capability gate.
	_, err := svc.Update(approved, 42, ProductInput{Name: "ghost", Price: 1})
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))

	_, err = svc.Update(pending, 42, ProductInput{Name: "ghost", Price: 1})
	assert.Equal(t, http.StatusForbidden, apperr.Status(err))
}

// A vote that lands between a product read and its write-back must survive
// the update; the stored counter belongs to the vote path.
func TestUpdatePreservesVoteCount(t *testing.T) {
	store, svc, approved, _ := newProductFixture(t)

	voter := &models.User{Email: "voter@example.com", Username: "voter", Password: "x"}
	require.NoError(t, store.Users().Create(voter))

	product, err := svc.Create(approved, ProductInput{Name: "lamp", Price: 30})
	require.NoError(t, err)

	stale, err := store.Products().GetByID(product.ID)
	require.NoError(t, err)

	count, err := store.Votes().Cast(voter.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	stale.Name = "desk lamp"
	require.NoError(t, store.Products().Update(stale))

	stored, err := store.Products().GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "desk lamp", stored.Name)
	assert.Equal(t, 1, stored.VoteCount)

	ledger, err := store.Votes().CountForProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int(ledger), stored.VoteCount)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	store, svc, approved, _ := newProductFixture(t)

	other := &models.User{Email: "other@example.com", Username: "other", Password: "x", Approved: true}
	require.NoError(t, store.Users().Create(other))

	product, err := svc.Create(approved, ProductInput{Name: "lamp", Price: 30})
	require.NoError(t, err)

	err = svc.Delete(other, product.ID)
	assert.Equal(t, http.StatusForbidden, apperr.Status(err))

	require.NoError(t, svc.Delete(approved, product.ID))

	_, err = svc.Get(product.ID)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestListPaginationAndSearch(t *testing.T) {
	_, svc, approved, _ := newProductFixture(t)

	names := []string{"Mechanical Keyboard", "Ergonomic Mouse", "Keyboard Wrist Rest", "Monitor"}
	for _, name := range names {
		_, err := svc.Create(approved, ProductInput{Name: name, Price: 10})
		require.NoError(t, err)
	}

	// Case-insensitive substring match.
	matches, err := svc.List(20, 0, "keyboard")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	all, err := svc.List(20, 0, "")
	require.NoError(t, err)
	require.Len(t, all, 4)

	page, err := svc.List(2, 0, "")
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := svc.List(2, 2, "")
	require.NoError(t, err)
	assert.Len(t, rest, 2)
	assert.NotEqual(t, page[0].ID, rest[0].ID)
}
