package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/jakaplan/zebra/models"
)

// TransactionLog is the durable sink for completed sales. Records are
// appended exactly once and never read back by this service.
type TransactionLog interface {
	Append(rec models.TransactionRecord) error
	Close() error
}

var csvHeader = []string{"id", "date", "product", "price", "name", "email", "address", "city", "state"}

type csvTransactionLog struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

// NewCSVTransactionLog opens (creating if needed) an append-only CSV log at
// path. The header row is written only when the file is first created.
func NewCSVTransactionLog(path string) (TransactionLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	info, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open transaction log: %w", err)
	}

	l := &csvTransactionLog{file: file, w: csv.NewWriter(file)}
	if isNew {
		if err := l.writeRow(csvHeader); err != nil {
			file.Close()
			return nil, fmt.Errorf("write log header: %w", err)
		}
	}
	return l, nil
}

func (l *csvTransactionLog) Append(rec models.TransactionRecord) error {
	return l.writeRow([]string{
		rec.IntentID,
		strconv.FormatInt(rec.CreatedAt.UnixMilli(), 10),
		rec.Product,
		strconv.FormatInt(rec.Price, 10),
		rec.Name,
		rec.Email,
		rec.Address,
		rec.City,
		rec.State,
	})
}

func (l *csvTransactionLog) writeRow(row []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}

func (l *csvTransactionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
