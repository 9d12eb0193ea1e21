// Package surface abstracts the embeddable rendering surface bound to a
// tab: navigation commands in one direction, lifecycle events in the other.
package surface

import "context"

// Event is the closed set of lifecycle notifications a surface emits.
// The session manager consumes these through a single entry point.
type Event interface{ isEvent() }

// LoadStarted signals the surface began loading a document.
type LoadStarted struct{}

// LoadFinished signals the surface finished (or aborted) loading.
type LoadFinished struct{}

// TitleUpdated carries the page's current title.
type TitleUpdated struct {
	Title string
}

// FaviconUpdated carries favicon candidate URLs, best first.
type FaviconUpdated struct {
	Candidates []string
}

// Navigated confirms a top-level navigation committed to URL.
type Navigated struct {
	URL string
}

// NavigatedInPage signals an in-document navigation (fragment, pushState).
type NavigatedInPage struct {
	URL         string
	IsMainFrame bool
}

// NewWindowRequested signals the page asked for a new window; the shell
// answers by opening a tab instead.
type NewWindowRequested struct {
	URL string
}

func (LoadStarted) isEvent()        {}
func (LoadFinished) isEvent()       {}
func (TitleUpdated) isEvent()       {}
func (FaviconUpdated) isEvent()     {}
func (Navigated) isEvent()          {}
func (NavigatedInPage) isEvent()    {}
func (NewWindowRequested) isEvent() {}

// Handler receives events for the tab a surface is bound to.
type Handler func(tabID string, ev Event)

// Surface is one navigable rendering surface.
//
// Navigation commands return as soon as the command is issued; completion
// is reported through events, never through the return value.
type Surface interface {
	Navigate(ctx context.Context, url string) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	Reload(ctx context.Context) error
	CanGoBack(ctx context.Context) bool
	CanGoForward(ctx context.Context) bool

	// CapturePage returns an image of the current page, or nil when the
	// surface has nothing to show yet.
	CapturePage(ctx context.Context) ([]byte, error)

	Close() error
}

// Factory creates a surface bound to a tab id, delivering its events to
// the given handler.
type Factory interface {
	New(tabID string, handler Handler) (Surface, error)
}
