package repository_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jakaplan/zebra/repository"

	"github.com/stretchr/testify/assert"
)

func openLog(t *testing.T, path string) repository.TransactionLog {
	t.Helper()
	log, err := repository.NewCSVTransactionLog(path)
	assert.NoError(t, err)
	return log
}

func TestHeaderWrittenOnceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "transactions.csv")

	log := openLog(t, path)
	assert.NoError(t, log.Append(record("pi_1", time.Now())))
	assert.NoError(t, log.Close())

	// Reopen: no second header, prior rows preserved.
	log = openLog(t, path)
	assert.NoError(t, log.Append(record("pi_2", time.Now())))
	assert.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "id,date,product,price,name,email,address,city,state", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "pi_1,"))
	assert.True(t, strings.HasPrefix(lines[2], "pi_2,"))
}

func TestFieldsWithDelimitersAndQuotesStayOneRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	rec := record("pi_1", time.Now())
	rec.Address = `1 Main St, Apt "B"`
	rec.Name = "Doe, Jane"

	log := openLog(t, path)
	assert.NoError(t, log.Append(rec))
	assert.NoError(t, log.Close())

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2, "escaped fields must still parse as one record")
	assert.Equal(t, `1 Main St, Apt "B"`, rows[1][6])
	assert.Equal(t, "Doe, Jane", rows[1][4])
}

func TestAppendRowContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	created := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	log := openLog(t, path)
	assert.NoError(t, log.Append(record("pi_abc", created)))
	assert.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "pi_abc,1764590400000,Candy Cane,249,Ann,a@x.com,1 Main,Springfield,IL", lines[1])
}
