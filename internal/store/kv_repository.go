// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlezhnev/habitsync/internal/logger"
)

type kvRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		db:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build kv select: %w", err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to query kv value")
		return nil, false, fmt.Errorf("failed to query kv value (key=%s): %w", key, err)
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build kv upsert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to execute kv upsert")
		return fmt.Errorf("failed to save kv value (key=%s): %w", key, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build kv delete: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to execute kv delete")
		return fmt.Errorf("failed to delete kv value (key=%s): %w", key, err)
	}

	return nil
}
