package statement

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerhq/teller/internal/model"
)

func fixture() (*model.Customer, []model.Transaction) {
	c := model.NewCustomer(1, "Alice", model.FromCents(12500))
	txs := []model.Transaction{
		{ID: "tok-2", CustomerID: 1, Type: model.TypeWithdraw, Amount: model.FromCents(2050), At: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)},
		{ID: "tok-1", CustomerID: 1, Type: model.TypeDeposit, Amount: model.FromCents(5000), At: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)},
	}
	return c, txs
}

func TestWriteText(t *testing.T) {
	c, txs := fixture()
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, c, txs, "EUR"))

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "125.00 EUR")
	assert.Contains(t, out, "WITHDRAW")
	assert.Contains(t, out, "20.50 EUR")
	assert.Contains(t, out, "tok-1")
}

func TestWriteText_Empty(t *testing.T) {
	c, _ := fixture()
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, c, nil, "EUR"))
	assert.Contains(t, buf.String(), "No transactions.")
}

func TestWritePDF(t *testing.T) {
	c, txs := fixture()
	var buf bytes.Buffer

	require.NoError(t, WritePDF(&buf, c, txs, "EUR"))
	// A PDF document, not an empty file.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}
