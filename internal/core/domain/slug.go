package domain

import "errors"

// SlugTable identifies one of the slug-bearing entity tables.
type SlugTable string

const (
	SlugTableCategory SlugTable = "category"
	SlugTableProduct  SlugTable = "product"
	SlugTableBlog     SlugTable = "blog"
)

var ErrSlugInvalid = errors.New("slug has an invalid format")
var ErrSlugTaken = errors.New("slug is already in use")
var ErrSlugUnavailable = errors.New("no free slug suffix available")
var ErrUnknownSlugTable = errors.New("unknown slug table")

// Valid reports whether t names one of the three slug-bearing tables.
func (t SlugTable) Valid() bool {
	switch t {
	case SlugTableCategory, SlugTableProduct, SlugTableBlog:
		return true
	}
	return false
}
