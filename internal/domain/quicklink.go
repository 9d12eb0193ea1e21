package domain

import "encoding/json"

// MaxQuickLinks caps the number of tiles shown on the start page.
const MaxQuickLinks = 12

// DefaultQuickLinkCount is the size of the built-in tile table.
const DefaultQuickLinkCount = 6

// QuickLink is one shortcut tile on the start page.
type QuickLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`

	// IsDefault marks built-in tiles; deleting one hides it instead
	// of removing it from the table.
	IsDefault bool `json:"isDefault,omitempty"`
}

// DefaultQuickLinks returns the built-in tile table, in display order.
func DefaultQuickLinks() []QuickLink {
	return []QuickLink{
		{Title: "Google", URL: "https://google.com", Icon: "fab fa-google", Color: "#4285f4", IsDefault: true},
		{Title: "YouTube", URL: "https://youtube.com", Icon: "fab fa-youtube", Color: "#ff0000", IsDefault: true},
		{Title: "GitHub", URL: "https://github.com", Icon: "fab fa-github", Color: "#333", IsDefault: true},
		{Title: "Reddit", URL: "https://reddit.com", Icon: "fab fa-reddit", Color: "#ff4500", IsDefault: true},
		{Title: "Twitter", URL: "https://twitter.com", Icon: "fab fa-twitter", Color: "#1da1f2", IsDefault: true},
		{Title: "Wikipedia", URL: "https://wikipedia.org", Icon: "fab fa-wikipedia-w", Color: "#000", IsDefault: true},
	}
}

// VisibleDefaults filters defaults by the hidden index list, preserving order.
func VisibleDefaults(defaults []QuickLink, hidden []int) []QuickLink {
	hiddenSet := make(map[int]struct{}, len(hidden))
	for _, i := range hidden {
		hiddenSet[i] = struct{}{}
	}

	visible := make([]QuickLink, 0, len(defaults))
	for i, link := range defaults {
		if _, ok := hiddenSet[i]; ok {
			continue
		}
		visible = append(visible, link)
	}
	return visible
}

// ResolveQuickLinks computes the visible tile set: defaults minus hidden
// indices, then custom links in add-order, truncated to MaxQuickLinks.
func ResolveQuickLinks(defaults []QuickLink, hidden []int, custom []QuickLink) []QuickLink {
	combined := append(VisibleDefaults(defaults, hidden), custom...)
	if len(combined) > MaxQuickLinks {
		combined = combined[:MaxQuickLinks]
	}
	return combined
}

// OriginalDefaultIndex maps a display index of a visible default tile back
// to its index in the full default table. Returns -1 if the display index
// does not address a visible default.
func OriginalDefaultIndex(defaults []QuickLink, hidden []int, displayIndex int) int {
	visible := VisibleDefaults(defaults, hidden)
	if displayIndex < 0 || displayIndex >= len(visible) {
		return -1
	}
	target := visible[displayIndex].URL
	for i, link := range defaults {
		if link.URL == target {
			return i
		}
	}
	return -1
}

// CustomLinkIndex maps a display index to an index into the custom link
// list, given the default table size and how many defaults are hidden.
func CustomLinkIndex(displayIndex, defaultCount, hiddenCount int) int {
	return displayIndex - (defaultCount - hiddenCount)
}

// QuickLinksFromSetting decodes the customQuickLinks settings value, which
// arrives as []any after a JSON round trip.
func QuickLinksFromSetting(v any) []QuickLink {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var links []QuickLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil
	}
	return links
}
