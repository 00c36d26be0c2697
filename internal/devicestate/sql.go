package devicestate

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"kamakpos/m/internal/core/errx"
)

// SQLStore keeps device state in the device_state table.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, namespace, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		s.db.Rebind(`SELECT value FROM device_state WHERE namespace = ? AND state_key = ?`), namespace, key)
	if err != nil {
		return "", errx.WrapSQL(err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO device_state (namespace, state_key, value, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (namespace, state_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		namespace, key, value, time.Now().UTC())
	return errx.WrapSQL(err)
}

func (s *SQLStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM device_state WHERE namespace = ? AND state_key IN (?)`, namespace, keys)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	return errx.WrapSQL(err)
}

func (s *SQLStore) Clear(ctx context.Context, namespace string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM device_state WHERE namespace = ?`), namespace)
	return errx.WrapSQL(err)
}
