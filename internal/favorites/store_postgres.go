// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookdex/bookdex/internal/platform/database/schema"
	"github.com/bookdex/bookdex/internal/platform/dberr"
)

// PostgresStore implements [Store] on a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) FetchAll(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.FavoriteBook.ISBN13, schema.FavoriteBook.Title, schema.FavoriteBook.Subtitle,
		schema.FavoriteBook.Authors, schema.FavoriteBook.Publisher, schema.FavoriteBook.ImageURL,
		schema.FavoriteBook.Price, schema.FavoriteBook.Year, schema.FavoriteBook.Rating,
		schema.FavoriteBook.AddedAt,
		schema.FavoriteBook.Table, schema.FavoriteBook.AddedAt,
	)

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.ISBN13, &r.Title, &r.Subtitle, &r.Authors, &r.Publisher,
			&r.ImageURL, &r.Price, &r.Year, &r.Rating, &r.AddedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite")
		}
		records = append(records, r)
	}

	return records, dberr.Wrap(rows.Err(), "list_favorites")
}

func (store *PostgresStore) Save(ctx context.Context, record Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.FavoriteBook.Table,
		schema.FavoriteBook.ISBN13, schema.FavoriteBook.Title, schema.FavoriteBook.Subtitle,
		schema.FavoriteBook.Authors, schema.FavoriteBook.Publisher, schema.FavoriteBook.ImageURL,
		schema.FavoriteBook.Price, schema.FavoriteBook.Year, schema.FavoriteBook.Rating,
		schema.FavoriteBook.AddedAt,
		schema.FavoriteBook.ISBN13,
		schema.FavoriteBook.Title, schema.FavoriteBook.Title,
		schema.FavoriteBook.Subtitle, schema.FavoriteBook.Subtitle,
		schema.FavoriteBook.Authors, schema.FavoriteBook.Authors,
		schema.FavoriteBook.Publisher, schema.FavoriteBook.Publisher,
		schema.FavoriteBook.ImageURL, schema.FavoriteBook.ImageURL,
		schema.FavoriteBook.Price, schema.FavoriteBook.Price,
		schema.FavoriteBook.Year, schema.FavoriteBook.Year,
		schema.FavoriteBook.Rating, schema.FavoriteBook.Rating,
		schema.FavoriteBook.AddedAt, schema.FavoriteBook.AddedAt,
	)

	_, err := store.db.Exec(ctx, query,
		record.ISBN13, record.Title, record.Subtitle, record.Authors, record.Publisher,
		record.ImageURL, record.Price, record.Year, record.Rating, record.AddedAt,
	)
	return dberr.Wrap(err, "save_favorite")
}

func (store *PostgresStore) Delete(ctx context.Context, isbn13 string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FavoriteBook.Table, schema.FavoriteBook.ISBN13,
	)

	cmd, err := store.db.Exec(ctx, query, isbn13)
	if err != nil {
		return dberr.Wrap(err, "delete_favorite")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (store *PostgresStore) Exists(ctx context.Context, isbn13 string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1`,
		schema.FavoriteBook.Table, schema.FavoriteBook.ISBN13,
	)

	var one int
	err := store.db.QueryRow(ctx, query, isbn13).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, dberr.Wrap(err, "favorite_exists")
	}
	return true, nil
}
