package domain

// DefaultTabTitle is the placeholder title shown until the page reports one.
const DefaultTabTitle = "New Tab"

// BlankURL is the sentinel URL of an unnavigated surface.
// Navigations that land here are never recorded in history.
const BlankURL = "about:blank"

// Tab is one logical browsing session slot.
//
// It holds navigation state only; the rendering surface bound to it lives
// behind the surface package and is addressed by the tab ID.
type Tab struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is a UUIDv7 token, so tab ids sort in creation order.
	ID string `json:"id"`

	// ─────────────────────────────
	// Page metadata (mutated by surface events)
	// ─────────────────────────────

	// Title is the last title reported by the page, or DefaultTabTitle.
	Title string `json:"title"`

	// PendingURL is set immediately on navigate, before the surface confirms.
	PendingURL string `json:"pendingUrl,omitempty"`

	// ConfirmedURL is set only by a navigation-confirmed surface event.
	ConfirmedURL string `json:"confirmedUrl,omitempty"`

	// Favicon is the first favicon candidate reported by the page, if any.
	Favicon string `json:"favicon,omitempty"`

	// ─────────────────────────────
	// Surface-derived state
	// ─────────────────────────────

	IsLoading    bool `json:"isLoading"`
	CanGoBack    bool `json:"canGoBack"`
	CanGoForward bool `json:"canGoForward"`
}

// URL returns the address the chrome should display: the confirmed URL once
// a navigation settled, otherwise the optimistic pending one.
func (t *Tab) URL() string {
	if t.ConfirmedURL != "" {
		return t.ConfirmedURL
	}
	return t.PendingURL
}
