package models

// Link is a single bookmark. It always belongs to a category.
type Link struct {
	ID         int64
	Name       string
	URL        string
	CategoryID int64
}
