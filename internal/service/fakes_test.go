package service

import (
	"context"
	"errors"
	"sort"

	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/repository"
)

type fakeUserStore struct {
	users  map[int64]model.User
	nextID int64
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]model.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

type fakeItemStore struct {
	items  map[int64]model.Item
	nextID int64
	err    error
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int64]model.Item)}
}

func (f *fakeItemStore) Create(ctx context.Context, item *model.Item) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemStore) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return &it, nil
}

func (f *fakeItemStore) mutate(authorID, id int64, fn func(it *model.Item)) error {
	if f.err != nil {
		return f.err
	}
	it, ok := f.items[id]
	if !ok || it.AuthorID != authorID {
		return repository.ErrItemNotFound
	}
	fn(&it)
	f.items[id] = it
	return nil
}

func (f *fakeItemStore) UpdateBody(ctx context.Context, authorID, id int64, body string) error {
	return f.mutate(authorID, id, func(it *model.Item) { it.Body = body })
}

func (f *fakeItemStore) ToggleDone(ctx context.Context, authorID, id int64) error {
	return f.mutate(authorID, id, func(it *model.Item) { it.Done = !it.Done })
}

func (f *fakeItemStore) Delete(ctx context.Context, authorID, id int64) error {
	if err := f.mutate(authorID, id, func(*model.Item) {}); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemStore) DeleteCompleted(ctx context.Context, authorID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for id, it := range f.items {
		if it.AuthorID == authorID && it.Done {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeItemStore) matching(authorID int64, done *bool) []model.Item {
	var out []model.Item
	for _, it := range f.items {
		if it.AuthorID == authorID && (done == nil || it.Done == *done) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeItemStore) ListByAuthor(ctx context.Context, authorID int64, done *bool, limit, offset int) ([]model.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.matching(authorID, done)
	if offset >= len(all) {
		return []model.Item{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (f *fakeItemStore) CountByAuthor(ctx context.Context, authorID int64, done *bool) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(authorID, done))), nil
}

var errStoreDown = errors.New("store down")
