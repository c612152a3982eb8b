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

func newVoteFixture(t *testing.T) (*memory.Store, *VoteService, *models.User, *models.Product) {
	t.Helper()
	store := memory.NewStore()

	owner := &models.User{Email: "owner@example.com", Username: "owner", Password: "x", Approved: true}
	require.NoError(t, store.Users().Create(owner))

	voter := &models.User{Email: "voter@example.com", Username: "voter", Password: "x"}
	require.NoError(t, store.Users().Create(voter))

	product := &models.Product{UserID: owner.ID, Name: "keyboard", Price: 120, IsAvailable: true}
	require.NoError(t, store.Products().Create(product))

	return store, NewVoteService(store.Votes(), store.Products()), voter, product
}

func TestVoteUpThenUpConflicts(t *testing.T) {
	_, svc, voter, product := newVoteFixture(t)

	count, err := svc.Vote(voter, product.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.Vote(voter, product.ID, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.Status(err))

	// Count unchanged by the rejected duplicate.
	stored, err := svc.products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.VoteCount)
}

func TestVoteDownWithoutVoteNotFound(t *testing.T) {
	_, svc, voter, product := newVoteFixture(t)

	_, err := svc.Vote(voter, product.ID, false)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestVoteMissingProductNotFound(t *testing.T) {
	_, svc, voter, _ := newVoteFixture(t)

	_, err := svc.Vote(voter, 999, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

// Full toggle scenario: up, duplicate up, down, redundant down.
func TestVoteToggleScenario(t *testing.T) {
	_, svc, voter, product := newVoteFixture(t)

	count, err := svc.Vote(voter, product.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.Vote(voter, product.ID, true)
	assert.Equal(t, http.StatusConflict, apperr.Status(err))

	count, err = svc.Vote(voter, product.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.Vote(voter, product.ID, false)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

// The denormalized counter must always match the ledger, whatever sequence
// of toggles ran before.
func TestVoteCountMatchesLedger(t *testing.T) {
	store, svc, voter, product := newVoteFixture(t)

	second := &models.User{Email: "second@example.com", Username: "second", Password: "x"}
	require.NoError(t, store.Users().Create(second))

	steps := []struct {
		user *models.User
		up   bool
	}{
		{voter, true},
		{second, true},
		{voter, false},
		{voter, true},
		{second, false},
	}
	for _, step := range steps {
		_, err := svc.Vote(step.user, product.ID, step.up)
		require.NoError(t, err)
	}

	ledger, err := store.Votes().CountForProduct(product.ID)
	require.NoError(t, err)

	stored, err := store.Products().GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int(ledger), stored.VoteCount)
	assert.Equal(t, 1, stored.VoteCount)
}

func TestDeleteProductCascadesVotes(t *testing.T) {
	store, svc, voter, product := newVoteFixture(t)

	_, err := svc.Vote(voter, product.ID, true)
	require.NoError(t, err)

	require.NoError(t, store.Products().Delete(product.ID))

	count, err := store.Votes().CountForProduct(product.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteUserCascadesVotes(t *testing.T) {
	store, svc, voter, product := newVoteFixture(t)

	_, err := svc.Vote(voter, product.ID, true)
	require.NoError(t, err)

	require.NoError(t, store.Users().Delete(voter.ID))

	count, err := store.Votes().CountForProduct(product.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The counter write-back tracks the cascade too.
	stored, err := store.Products().GetByID(product.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.VoteCount)
}
