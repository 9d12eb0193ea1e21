// Package session owns the tab list: creation, activation, closing and
// the navigation state machine driven by surface events.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/history"
	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/settings"
	"github.com/glassbrowser/glassd/internal/surface"
)

// Manager is the single owner of tab state. All mutation happens under one
// mutex, including surface events, so observers always see a consistent
// list with exactly one active tab.
type Manager struct {
	surfaces surface.Factory
	history  *history.Service
	settings *settings.Synchronizer
	logger   logger.Logger

	mu       sync.Mutex
	tabs     []*domain.Tab
	bound    map[string]surface.Surface
	activeID string
}

// NewManager creates an empty session. Call CreateTab to open the first tab.
func NewManager(factory surface.Factory, hist *history.Service, sync *settings.Synchronizer, log logger.Logger) *Manager {
	return &Manager{
		surfaces: factory,
		history:  hist,
		settings: sync,
		logger:   log,
		bound:    make(map[string]surface.Surface),
	}
}

// Tabs returns a snapshot of all tabs in creation order.
func (m *Manager) Tabs() []domain.Tab {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Tab, len(m.tabs))
	for i, t := range m.tabs {
		out[i] = *t
	}
	return out
}

// ActiveTab returns a snapshot of the active tab, or false when the
// session holds no tabs.
func (m *Manager) ActiveTab() (domain.Tab, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(m.activeID)
	if t == nil {
		return domain.Tab{}, false
	}
	return *t, true
}

// CreateTab opens a new tab, activates it and navigates it to url when
// url is non-empty. The rendering surface is created lazily on the first
// navigation.
func (m *Manager) CreateTab(ctx context.Context, url string) (domain.Tab, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Tab{}, fmt.Errorf("failed to generate tab id: %w", err)
	}

	tab := &domain.Tab{
		ID:    id.String(),
		Title: domain.DefaultTabTitle,
	}

	m.mu.Lock()
	m.tabs = append(m.tabs, tab)
	m.activeID = tab.ID
	m.mu.Unlock()

	m.logger.Info("tab created", logger.String("tab_id", tab.ID))

	if url != "" {
		return m.Navigate(ctx, tab.ID, url)
	}
	return *tab, nil
}

// SetActiveTab activates the tab with the given id. Unknown ids are
// ignored without error.
func (m *Manager) SetActiveTab(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(id) == nil {
		return
	}
	m.activeID = id
}

// CloseTab removes a tab and releases its surface. Closing the active tab
// moves activation to the tab at min(closedIndex, len-1) of the remaining
// list. Closing the last tab replaces it with a fresh blank tab, so the
// session never reaches zero tabs.
func (m *Manager) CloseTab(ctx context.Context, id string) error {
	m.mu.Lock()

	idx := -1
	for i, t := range m.tabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}

	sf := m.bound[id]
	delete(m.bound, id)
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)

	wasActive := m.activeID == id
	if wasActive && len(m.tabs) > 0 {
		next := idx
		if next > len(m.tabs)-1 {
			next = len(m.tabs) - 1
		}
		m.activeID = m.tabs[next].ID
	}
	empty := len(m.tabs) == 0
	m.mu.Unlock()

	if sf != nil {
		if err := sf.Close(); err != nil {
			m.logger.Warn("failed to close surface", logger.String("tab_id", id), logger.Error(err))
		}
	}

	m.logger.Info("tab closed", logger.String("tab_id", id))

	if empty {
		_, err := m.CreateTab(ctx, "")
		return err
	}
	return nil
}

// Navigate resolves input through the URL rules (search queries go to the
// configured engine) and issues the navigation. The pending URL is set
// immediately; the confirmed URL only moves when the surface reports the
// navigation committed.
func (m *Manager) Navigate(ctx context.Context, id, input string) (domain.Tab, error) {
	engine := m.settings.Current().String("searchEngine", domain.DefaultSearchEngine)
	target := domain.NormalizeURL(input, engine)

	m.mu.Lock()
	tab := m.find(id)
	if tab == nil {
		m.mu.Unlock()
		return domain.Tab{}, domain.ErrNotFound
	}

	tab.PendingURL = target
	tab.IsLoading = true

	sf, ok := m.bound[id]
	m.mu.Unlock()

	if !ok {
		var err error
		sf, err = m.surfaces.New(id, m.HandleSurfaceEvent)
		if err != nil {
			return domain.Tab{}, fmt.Errorf("failed to create surface: %w", err)
		}
		m.mu.Lock()
		m.bound[id] = sf
		m.mu.Unlock()
	}

	if err := sf.Navigate(ctx, target); err != nil {
		return domain.Tab{}, fmt.Errorf("failed to navigate: %w", err)
	}
	return m.snapshot(id), nil
}

// GoBack asks the tab's surface to go back in its navigation history.
func (m *Manager) GoBack(ctx context.Context, id string) error {
	sf, err := m.surfaceFor(id)
	if err != nil {
		return err
	}
	return sf.GoBack(ctx)
}

// GoForward asks the tab's surface to go forward.
func (m *Manager) GoForward(ctx context.Context, id string) error {
	sf, err := m.surfaceFor(id)
	if err != nil {
		return err
	}
	return sf.GoForward(ctx)
}

// Reload reloads the tab's current page.
func (m *Manager) Reload(ctx context.Context, id string) error {
	sf, err := m.surfaceFor(id)
	if err != nil {
		return err
	}
	return sf.Reload(ctx)
}

// Capture returns an image of the tab's current page.
func (m *Manager) Capture(ctx context.Context, id string) ([]byte, error) {
	sf, err := m.surfaceFor(id)
	if err != nil {
		return nil, err
	}
	return sf.CapturePage(ctx)
}

// Close releases every surface. The tab list is left as is.
func (m *Manager) Close() {
	m.mu.Lock()
	surfaces := make([]surface.Surface, 0, len(m.bound))
	for id, sf := range m.bound {
		surfaces = append(surfaces, sf)
		delete(m.bound, id)
	}
	m.mu.Unlock()

	for _, sf := range surfaces {
		if err := sf.Close(); err != nil {
			m.logger.Warn("failed to close surface", logger.Error(err))
		}
	}
}

// HandleSurfaceEvent is the single entry point for surface lifecycle
// events. Events for unknown tabs are dropped; a tab may have closed
// while an event was in flight.
func (m *Manager) HandleSurfaceEvent(tabID string, ev surface.Event) {
	m.mu.Lock()
	tab := m.find(tabID)
	if tab == nil {
		m.mu.Unlock()
		return
	}

	var record *domain.Tab // set when the event commits a navigation

	switch e := ev.(type) {
	case surface.LoadStarted:
		tab.IsLoading = true

	case surface.LoadFinished:
		tab.IsLoading = false

	case surface.TitleUpdated:
		if e.Title != "" {
			tab.Title = e.Title
		}

	case surface.FaviconUpdated:
		if len(e.Candidates) > 0 {
			tab.Favicon = e.Candidates[0]
		}

	case surface.Navigated:
		tab.ConfirmedURL = e.URL
		tab.PendingURL = ""
		snapshot := *tab
		record = &snapshot

	case surface.NavigatedInPage:
		// In-page navigations update the address only; history records
		// committed document loads, not fragment or pushState hops.
		if e.IsMainFrame {
			tab.ConfirmedURL = e.URL
		}

	case surface.NewWindowRequested:
		m.mu.Unlock()
		if _, err := m.CreateTab(context.Background(), e.URL); err != nil {
			m.logger.Error("failed to open requested window", logger.Error(err))
		}
		return
	}

	sf := m.bound[tabID]
	m.mu.Unlock()

	if sf != nil {
		canBack := sf.CanGoBack(context.Background())
		canForward := sf.CanGoForward(context.Background())
		m.mu.Lock()
		if t := m.find(tabID); t != nil {
			t.CanGoBack = canBack
			t.CanGoForward = canForward
		}
		m.mu.Unlock()
	}

	if record != nil {
		if _, err := m.history.Add(context.Background(), record.URL(), record.Title); err != nil {
			m.logger.Error("failed to record history", logger.Error(err))
		}
	}
}

// find returns the tab with the given id. Caller holds m.mu.
func (m *Manager) find(id string) *domain.Tab {
	for _, t := range m.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (m *Manager) snapshot(id string) domain.Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.find(id); t != nil {
		return *t
	}
	return domain.Tab{}
}

func (m *Manager) surfaceFor(id string) (surface.Surface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(id) == nil {
		return nil, domain.ErrNotFound
	}
	sf, ok := m.bound[id]
	if !ok {
		return nil, fmt.Errorf("tab %s has no surface yet: %w", id, domain.ErrNotFound)
	}
	return sf, nil
}
