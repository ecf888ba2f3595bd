package store

import (
	"database/sql"
	"errors"
	"fmt"

	"co.com.amazonico.express/internal/model"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// receiptCache remembers which request ids this process has relayed, so the
// confirmation page can show when a request was submitted. Memory-mode
// sqlite: nothing survives a restart, ids are not durable records.
type receiptCache struct {
	db *sqlx.DB
}

func NewReceiptCache() (*receiptCache, error) {
	db, err := sqlx.Connect("sqlite3", "file:receiptcache.db?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	receiptCache := &receiptCache{db}
	receiptCache.init()

	return receiptCache, nil
}

func (s *receiptCache) init() {
	s.db.MustExec(`create table if not exists receipt_cache (
		request_id integer primary key,
		created_at datetime not null
	)`)
}

func (s *receiptCache) Close() error {
	return s.db.Close()
}

func (s *receiptCache) Get(requestID int) (*model.Receipt, error) {
	receipt := &model.Receipt{RequestID: requestID}
	err := s.db.Get(&receipt.CreatedAt, "SELECT created_at FROM receipt_cache WHERE request_id = ?", requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorRequestNotFound
		}
		return nil, fmt.Errorf("getting receipt from cache: %w", err)
	}
	return receipt, nil
}

func (s *receiptCache) Set(receipt *model.Receipt) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO receipt_cache (request_id, created_at) VALUES (?, ?)",
		receipt.RequestID, receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("storing receipt in cache: %w", err)
	}
	return nil
}
