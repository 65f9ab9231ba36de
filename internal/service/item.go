package service

import (
	"context"
	"errors"
	"strings"

	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/repository"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrForbidden       = errors.New("item belongs to another user")
	ErrInvalidItemBody = errors.New("item body is empty or invalid")
	ErrPageNotFound    = errors.New("page out of range")
)

// ItemStore is the persistence the item service needs.
type ItemStore interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	UpdateBody(ctx context.Context, authorID, id int64, body string) error
	ToggleDone(ctx context.Context, authorID, id int64) error
	Delete(ctx context.Context, authorID, id int64) error
	DeleteCompleted(ctx context.Context, authorID int64) (int64, error)
	ListByAuthor(ctx context.Context, authorID int64, done *bool, limit, offset int) ([]model.Item, error)
	CountByAuthor(ctx context.Context, authorID int64, done *bool) (int64, error)
}

// ItemService holds the item rules: body validation and the ownership check.
type ItemService struct {
	items   ItemStore
	perPage int
}

// NewItemService creates a new ItemService listing perPage items per page.
func NewItemService(items ItemStore, perPage int) *ItemService {
	return &ItemService{items: items, perPage: perPage}
}

// Create stores a new item authored by userID.
func (s *ItemService) Create(ctx context.Context, userID int64, req model.ItemRequest) (model.Item, error) {
	body, err := itemBody(req)
	if err != nil {
		return model.Item{}, err
	}

	item := model.Item{Body: body, AuthorID: userID}
	if err := s.items.Create(ctx, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// Get returns an item owned by userID.
func (s *ItemService) Get(ctx context.Context, userID, itemID int64) (model.Item, error) {
	item, err := s.owned(ctx, userID, itemID)
	if err != nil {
		return model.Item{}, err
	}
	return *item, nil
}

// Replace overwrites the body of an item owned by userID. Ownership is
// checked before the new body is validated.
func (s *ItemService) Replace(ctx context.Context, userID, itemID int64, req model.ItemRequest) error {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return err
	}

	body, err := itemBody(req)
	if err != nil {
		return err
	}

	return notFound(s.items.UpdateBody(ctx, userID, itemID, body))
}

// Toggle flips the done flag of an item owned by userID.
func (s *ItemService) Toggle(ctx context.Context, userID, itemID int64) error {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return err
	}
	return notFound(s.items.ToggleDone(ctx, userID, itemID))
}

// Delete removes an item owned by userID.
func (s *ItemService) Delete(ctx context.Context, userID, itemID int64) error {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return err
	}
	return notFound(s.items.Delete(ctx, userID, itemID))
}

// ClearCompleted deletes every done item of userID. Nothing to delete is not
// an error.
func (s *ItemService) ClearCompleted(ctx context.Context, userID int64) (int64, error) {
	return s.items.DeleteCompleted(ctx, userID)
}

// List returns one page of userID's items matching filter. Pages are
// numbered from 1; a page below 1, or an empty page other than the first,
// is ErrPageNotFound.
func (s *ItemService) List(ctx context.Context, userID int64, filter model.ItemFilter, page int) (model.ItemPage, error) {
	if page < 1 {
		return model.ItemPage{}, ErrPageNotFound
	}

	done := filter.Done()

	total, err := s.items.CountByAuthor(ctx, userID, done)
	if err != nil {
		return model.ItemPage{}, err
	}

	result := model.ItemPage{Page: page, PerPage: s.perPage, Total: total}
	// Bounding by the page count first keeps the offset from overflowing.
	if page > result.Pages() {
		return model.ItemPage{}, ErrPageNotFound
	}

	items, err := s.items.ListByAuthor(ctx, userID, done, s.perPage, (page-1)*s.perPage)
	if err != nil {
		return model.ItemPage{}, err
	}
	if len(items) == 0 && page != 1 {
		return model.ItemPage{}, ErrPageNotFound
	}

	result.Items = items
	return result, nil
}

// owned loads an item and checks it belongs to userID. A missing item is
// reported before a foreign one.
func (s *ItemService) owned(ctx context.Context, userID, itemID int64) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, notFound(err)
	}
	if item.AuthorID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}

func itemBody(req model.ItemRequest) (string, error) {
	if req.Body == nil || strings.TrimSpace(*req.Body) == "" {
		return "", ErrInvalidItemBody
	}
	return *req.Body, nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}
