package model

// Item is a single to-do entry. AuthorID never changes after creation.
type Item struct {
	ID       int64
	Body     string
	Done     bool
	AuthorID int64
}

// ItemRequest is the JSON body accepted when creating or replacing an item.
// Body is a pointer so a missing field can be told apart from an empty one.
type ItemRequest struct {
	Body *string `json:"body"`
}

// ItemFilter selects items by completion state.
type ItemFilter int

const (
	FilterAll ItemFilter = iota
	FilterActive
	FilterCompleted
)

// Done returns the done value the filter matches, or nil for FilterAll.
func (f ItemFilter) Done() *bool {
	var done bool
	switch f {
	case FilterActive:
		done = false
	case FilterCompleted:
		done = true
	default:
		return nil
	}
	return &done
}

// ItemPage is one page of a filtered item listing.
type ItemPage struct {
	Items   []Item
	Page    int
	PerPage int
	Total   int64
}

// Pages is the number of pages needed for Total items, at least one.
func (p ItemPage) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

func (p ItemPage) HasPrev() bool {
	return p.Page > 1
}

func (p ItemPage) HasNext() bool {
	return p.Page < p.Pages()
}
