package customers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerhq/teller/internal/model"
)

func openRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "customers.csv"))
	require.NoError(t, err)
	return repo
}

func TestOpen_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	repo, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, repo.FindAll())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	repo := openRepo(t)

	alice, err := repo.Create("Alice", model.FromCents(10000))
	require.NoError(t, err)
	bob, err := repo.Create("Bob", model.FromCents(5000))
	require.NoError(t, err)

	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, 2, bob.ID)
	assert.Len(t, repo.FindAll(), 2)
}

func TestFindByID(t *testing.T) {
	repo := openRepo(t)
	alice, err := repo.Create("Alice", model.FromCents(10000))
	require.NoError(t, err)

	got, ok := repo.FindByID(alice.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, int64(10000), got.Account.Balance().Cents())

	_, ok = repo.FindByID(99)
	assert.False(t, ok)
}

func TestSave_PersistsBalanceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	repo, err := Open(path)
	require.NoError(t, err)

	alice, err := repo.Create("Alice", model.FromCents(10000))
	require.NoError(t, err)

	alice.Account.Deposit(model.FromCents(2500))
	require.NoError(t, repo.Save(alice))

	reopened, err := Open(path)
	require.NoError(t, err)
	got, ok := reopened.FindByID(alice.ID)
	require.True(t, ok)
	assert.Equal(t, int64(12500), got.Account.Balance().Cents())
}

func TestSaveAll_SingleRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	repo, err := Open(path)
	require.NoError(t, err)

	alice, err := repo.Create("Alice", model.FromCents(10000))
	require.NoError(t, err)
	bob, err := repo.Create("Bob", model.FromCents(5000))
	require.NoError(t, err)

	alice.Account.Withdraw(model.FromCents(1000))
	bob.Account.Deposit(model.FromCents(1000))
	require.NoError(t, repo.SaveAll(alice, bob))

	reopened, err := Open(path)
	require.NoError(t, err)
	gotAlice, _ := reopened.FindByID(alice.ID)
	gotBob, _ := reopened.FindByID(bob.ID)
	assert.Equal(t, int64(9000), gotAlice.Account.Balance().Cents())
	assert.Equal(t, int64(6000), gotBob.Account.Balance().Cents())
}

func TestCustomerCSVRoundTrip(t *testing.T) {
	c := model.NewCustomer(7, "Mario Rossi", model.FromCents(-250))

	got, err := UnmarshalCustomer(MarshalCustomer(c))
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Mario Rossi", got.Name)
	assert.Equal(t, int64(-250), got.Account.Balance().Cents())
}

func TestUnmarshalCustomer_Errors(t *testing.T) {
	_, err := UnmarshalCustomer([]string{"x", "Alice", "100"})
	assert.Error(t, err)

	_, err = UnmarshalCustomer([]string{"1", "Alice", "abc"})
	assert.Error(t, err)

	_, err = UnmarshalCustomer([]string{"1", "Alice"})
	assert.Error(t, err)
}
