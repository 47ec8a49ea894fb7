package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerhq/teller/internal/model"
)

func openStore(t *testing.T, logEnabled bool) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "transactions.csv"), logEnabled)
	require.NoError(t, err)
	return s
}

func tx(id string, customerID int, typ model.TransactionType, cents int64, at time.Time) model.Transaction {
	return model.Transaction{ID: id, CustomerID: customerID, Type: typ, Amount: model.FromCents(cents), At: at}
}

func TestOpen_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	_, err := Open(path, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestAppendAndFindByCustomer(t *testing.T) {
	s := openStore(t, true)
	now := time.Now()

	require.NoError(t, s.Append(tx("a", 1, model.TypeDeposit, 1000, now)))
	require.NoError(t, s.Append(tx("b", 2, model.TypeDeposit, 2000, now)))
	require.NoError(t, s.Append(tx("c", 1, model.TypeWithdraw, 500, now)))

	txs, err := s.FindByCustomer(1)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	// Chronological (insertion) order.
	assert.Equal(t, "a", txs[0].ID)
	assert.Equal(t, "c", txs[1].ID)
	assert.Equal(t, model.TypeWithdraw, txs[1].Type)
	assert.Equal(t, int64(500), txs[1].Amount.Cents())
}

func TestFindByCustomer_NoRecords(t *testing.T) {
	s := openStore(t, true)
	txs, err := s.FindByCustomer(42)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRecentN(t *testing.T) {
	s := openStore(t, true)
	now := time.Now()
	for i, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		require.NoError(t, s.Append(tx(id, 1, model.TypeDeposit, int64(100*(i+1)), now.Add(time.Duration(i)*time.Minute))))
	}

	recent, err := s.RecentN(1, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	// Most recent first.
	assert.Equal(t, "t5", recent[0].ID)
	assert.Equal(t, "t4", recent[1].ID)
	assert.Equal(t, "t3", recent[2].ID)
}

func TestRecentN_Bounds(t *testing.T) {
	s := openStore(t, true)
	require.NoError(t, s.Append(tx("t1", 1, model.TypeDeposit, 100, time.Now())))

	empty, err := s.RecentN(1, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	all, err := s.RecentN(1, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestQueries_LoggingDisabled(t *testing.T) {
	s := openStore(t, false)

	_, err := s.FindByCustomer(1)
	assert.ErrorIs(t, err, ErrLoggingDisabled)

	_, err = s.RecentN(1, 3)
	assert.ErrorIs(t, err, ErrLoggingDisabled)
}

func TestAppend_LoggingDisabledIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	s, err := Open(path, false)
	require.NoError(t, err)

	require.NoError(t, s.Append(tx("a", 1, model.TypeDeposit, 1000, time.Now())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestSameDayWithdrawalTotal(t *testing.T) {
	s := openStore(t, true)
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, s.Append(tx("a", 1, model.TypeWithdraw, 1000, yesterday)))
	require.NoError(t, s.Append(tx("b", 1, model.TypeWithdraw, 2000, today)))
	require.NoError(t, s.Append(tx("c", 1, model.TypeDeposit, 9000, today)))
	require.NoError(t, s.Append(tx("d", 1, model.TypeWithdraw, 300, today)))
	require.NoError(t, s.Append(tx("e", 2, model.TypeWithdraw, 7000, today)))

	total, err := s.SameDayWithdrawalTotal(1, today)
	require.NoError(t, err)
	// Only today's WITHDRAW rows for customer 1: 2000 + 300.
	assert.Equal(t, int64(2300), total)
}

func TestSameDayWithdrawalTotal_ScansWhileLoggingDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	today := time.Now()

	enabled, err := Open(path, true)
	require.NoError(t, err)
	require.NoError(t, enabled.Append(tx("a", 1, model.TypeWithdraw, 1500, today)))

	disabled, err := Open(path, false)
	require.NoError(t, err)
	total, err := disabled.SameDayWithdrawalTotal(1, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total)
}

func TestReadTransactions_SkipsEmptyID(t *testing.T) {
	csv := Header + "\n" +
		"a,1,DEPOSIT,1000,2025-06-01T10:00:00Z\n" +
		",1,DEPOSIT,9999,2025-06-01T10:01:00Z\n" +
		"b,1,WITHDRAW,500,2025-06-01T10:02:00Z\n"

	txs, err := ReadTransactions(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "a", txs[0].ID)
	assert.Equal(t, "b", txs[1].ID)
}

func TestTransactionCSVRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	in := tx("tok-1", 3, model.TypeWithdraw, 1550, at)

	got, err := UnmarshalTransaction(MarshalTransaction(in))
	require.NoError(t, err)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.CustomerID, got.CustomerID)
	assert.Equal(t, in.Type, got.Type)
	assert.Equal(t, in.Amount.Cents(), got.Amount.Cents())
	assert.True(t, got.At.Equal(at))
}

func TestUnmarshalTransaction_Errors(t *testing.T) {
	badRows := [][]string{
		{"a", "x", "DEPOSIT", "1000", "2025-06-01T10:00:00Z"},
		{"a", "1", "DEPOSIT", "abc", "2025-06-01T10:00:00Z"},
		{"a", "1", "DEPOSIT", "1000", "not-a-time"},
		{"a", "1", "DEPOSIT", "1000"},
	}
	for _, row := range badRows {
		_, err := UnmarshalTransaction(row)
		assert.Error(t, err, "row: %v", row)
	}
}
