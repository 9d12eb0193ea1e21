package domain

import "time"

// Bookmark is a saved page reference.
//
// Bookmarks are unique by URL: saving the URL of an existing bookmark
// removes it instead (toggle semantics).
type Bookmark struct {
	// ID is a UUIDv7 token assigned at creation.
	ID string `json:"id"`

	Title   string `json:"title"`
	URL     string `json:"url"`
	Favicon string `json:"favicon,omitempty"`

	// CreatedAt is the time the bookmark was saved.
	CreatedAt time.Time `json:"createdAt"`
}

// FindBookmarkByURL returns the index of the bookmark with the given URL, or -1.
func FindBookmarkByURL(bookmarks []Bookmark, url string) int {
	for i, b := range bookmarks {
		if b.URL == url {
			return i
		}
	}
	return -1
}
