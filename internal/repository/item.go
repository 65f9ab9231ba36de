package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/todoism/todoism-go/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

// ItemRepository handles item persistence. Mutations are scoped to the author
// so a row can only change if its owner asked for it.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts item and sets its generated ID.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `INSERT INTO items (body, done, author_id) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.Body, item.Done, item.AuthorID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	item.ID = id
	return nil
}

// GetByID retrieves an item regardless of its author.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT id, body, done, author_id FROM items WHERE id = ?`

	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Body, &item.Done, &item.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("select item: %w", err)
	}

	return item, nil
}

// UpdateBody replaces the body of an item owned by authorID.
func (r *ItemRepository) UpdateBody(ctx context.Context, authorID, id int64, body string) error {
	query := `UPDATE items SET body = ? WHERE id = ? AND author_id = ?`

	result, err := r.db.ExecContext(ctx, query, body, id, authorID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return expectAffected(result)
}

// ToggleDone flips the done flag of an item owned by authorID.
func (r *ItemRepository) ToggleDone(ctx context.Context, authorID, id int64) error {
	query := `UPDATE items SET done = NOT done WHERE id = ? AND author_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return fmt.Errorf("toggle item: %w", err)
	}
	return expectAffected(result)
}

// Delete removes an item owned by authorID.
func (r *ItemRepository) Delete(ctx context.Context, authorID, id int64) error {
	query := `DELETE FROM items WHERE id = ? AND author_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return expectAffected(result)
}

// DeleteCompleted removes every done item of authorID and reports how many
// rows went away.
func (r *ItemRepository) DeleteCompleted(ctx context.Context, authorID int64) (int64, error) {
	query := `DELETE FROM items WHERE author_id = ? AND done = ?`

	result, err := r.db.ExecContext(ctx, query, authorID, true)
	if err != nil {
		return 0, fmt.Errorf("delete completed items: %w", err)
	}
	return result.RowsAffected()
}

// ListByAuthor returns up to limit items of authorID starting at offset,
// oldest first. A nil done matches every item.
func (r *ItemRepository) ListByAuthor(ctx context.Context, authorID int64, done *bool, limit, offset int) ([]model.Item, error) {
	where, args := authorFilter(authorID, done)
	query := `SELECT id, body, done, author_id FROM items` + where + ` ORDER BY id ASC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Body, &it.Done, &it.AuthorID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// CountByAuthor counts the items ListByAuthor would page through.
func (r *ItemRepository) CountByAuthor(ctx context.Context, authorID int64, done *bool) (int64, error) {
	where, args := authorFilter(authorID, done)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

func authorFilter(authorID int64, done *bool) (string, []any) {
	if done == nil {
		return ` WHERE author_id = ?`, []any{authorID}
	}
	return ` WHERE author_id = ? AND done = ?`, []any{authorID, *done}
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
