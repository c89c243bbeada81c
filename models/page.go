package models

// Page is the top level of the directory. Slug is unique and derived from
// Name unless set explicitly.
type Page struct {
	ID      int64
	Name    string
	Slug    string
	Regions []Region
}

// Region is a block on a page holding categories.
type Region struct {
	ID         int64
	Name       string
	PageID     *int64
	Categories []Category
}
