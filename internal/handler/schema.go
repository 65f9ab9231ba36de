package handler

import "github.com/todoism/todoism-go/internal/model"

type authorJSON struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Kind     string `json:"kind"`
}

type itemJSON struct {
	ID     int64      `json:"id"`
	Self   string     `json:"self"`
	Kind   string     `json:"kind"`
	Body   string     `json:"body"`
	Done   bool       `json:"done"`
	Author authorJSON `json:"author"`
}

type userJSON struct {
	ID                int64  `json:"id"`
	Self              string `json:"self"`
	Kind              string `json:"kind"`
	Username          string `json:"username"`
	AllItemsURL       string `json:"all_items_url"`
	ActiveItemsURL    string `json:"active_items_url"`
	CompletedItemsURL string `json:"completed_items_url"`
}

// collectionJSON is one page of items. Prev and Next are null at the edges.
type collectionJSON struct {
	Self  string     `json:"self"`
	Kind  string     `json:"kind"`
	Items []itemJSON `json:"items"`
	Prev  *string    `json:"prev"`
	Next  *string    `json:"next"`
	First string     `json:"first"`
	Last  string     `json:"last"`
	Count int64      `json:"count"`
}

func itemSchema(l links, item model.Item, author model.User) itemJSON {
	return itemJSON{
		ID:   item.ID,
		Self: l.item(item.ID),
		Kind: "Item",
		Body: item.Body,
		Done: item.Done,
		Author: authorJSON{
			ID:       author.ID,
			URL:      l.url(pathUser),
			Username: author.Username,
			Kind:     "User",
		},
	}
}

func userSchema(l links, user model.User) userJSON {
	return userJSON{
		ID:                user.ID,
		Self:              l.url(pathUser),
		Kind:              "User",
		Username:          user.Username,
		AllItemsURL:       l.url(pathItems),
		ActiveItemsURL:    l.url(pathActiveItems),
		CompletedItemsURL: l.url(pathCompletedItems),
	}
}

// collectionSchema renders a page. Every item on it belongs to author, since
// listings never cross users.
func collectionSchema(l links, path string, page model.ItemPage, author model.User) collectionJSON {
	items := make([]itemJSON, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, itemSchema(l, it, author))
	}

	out := collectionJSON{
		Self:  l.page(path, page.Page),
		Kind:  "ItemCollection",
		Items: items,
		First: l.page(path, 1),
		Last:  l.page(path, page.Pages()),
		Count: page.Total,
	}
	if page.HasPrev() {
		prev := l.page(path, page.Page-1)
		out.Prev = &prev
	}
	if page.HasNext() {
		next := l.page(path, page.Page+1)
		out.Next = &next
	}
	return out
}
