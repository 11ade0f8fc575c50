// README: List store backed by PostgreSQL (items as JSONB).
package list

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wut2pack/internal/modules/packing"
	"wut2pack/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, l *SavedList) error {
	items, err := json.Marshal(l.Items)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO lists (
            id, name, origin, destination, start_date, end_date,
            items, share_id, is_shared, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(l.ID),
		l.Name,
		l.Origin,
		l.Destination,
		l.StartDate,
		l.EndDate,
		items,
		string(l.ShareID),
		l.IsShared,
		l.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*SavedList, error) {
	return s.getBy(ctx, "id", string(id))
}

func (s *Store) GetByShareID(ctx context.Context, shareID types.ID) (*SavedList, error) {
	return s.getBy(ctx, "share_id", string(shareID))
}

func (s *Store) getBy(ctx context.Context, column, value string) (*SavedList, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, origin, destination, start_date, end_date,
               items, share_id, is_shared, created_at
        FROM lists
        WHERE `+column+` = $1`, value,
	)
	l, err := scanList(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListByIDs returns the given lists newest first. Unknown ids are skipped.
func (s *Store) ListByIDs(ctx context.Context, ids []types.ID) ([]*SavedList, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = string(id)
	}
	rows, err := s.db.Query(ctx, `
        SELECT id, name, origin, destination, start_date, end_date,
               items, share_id, is_shared, created_at
        FROM lists
        WHERE id = ANY($1)
        ORDER BY created_at DESC`, raw,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*SavedList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type Update struct {
	Name        *string
	Origin      *string
	Destination *string
	StartDate   *string
	EndDate     *string
	Items       *packing.PackingList
	IsShared    *bool
}

func (s *Store) Update(ctx context.Context, id types.ID, u Update) error {
	var items []byte
	if u.Items != nil {
		b, err := json.Marshal(u.Items)
		if err != nil {
			return err
		}
		items = b
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE lists SET
            name        = COALESCE($1, name),
            origin      = COALESCE($2, origin),
            destination = COALESCE($3, destination),
            start_date  = COALESCE($4::timestamptz, start_date),
            end_date    = COALESCE($5::timestamptz, end_date),
            items       = COALESCE($6::jsonb, items),
            is_shared   = COALESCE($7, is_shared)
        WHERE id = $8`,
		u.Name, u.Origin, u.Destination, u.StartDate, u.EndDate, items, u.IsShared,
		string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM lists WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*SavedList, error) {
	var l SavedList
	var items []byte
	err := row.Scan(
		&l.ID, &l.Name, &l.Origin, &l.Destination, &l.StartDate, &l.EndDate,
		&items, &l.ShareID, &l.IsShared, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &l.Items); err != nil {
		return nil, err
	}
	return &l, nil
}
