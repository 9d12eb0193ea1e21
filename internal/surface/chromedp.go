package surface

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/glassbrowser/glassd/internal/logger"
)

// Engine owns one shared Chrome process; each tab gets its own browser
// context (an isolated target) inside it.
type Engine struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      logger.Logger
	quality     int
	navWait     time.Duration
}

// EngineOptions configures the shared browser process.
type EngineOptions struct {
	Headless       bool
	CaptureQuality int           // JPEG quality for page captures, 1-100
	NavigateWait   time.Duration // max wait for a navigation to settle, 0 = unbounded
}

// NewEngine launches the browser process allocator. Targets are created
// lazily, one per tab.
func NewEngine(opts EngineOptions, log logger.Logger) *Engine {
	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", opts.Headless),
		chromedp.Flag("no-first-run", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), execOpts...)

	return &Engine{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		logger:      log,
		quality:     opts.CaptureQuality,
		navWait:     opts.NavigateWait,
	}
}

// Close tears down the browser process and every surface created from it.
func (e *Engine) Close() error {
	e.allocCancel()
	return nil
}

// New creates a surface for the given tab and starts translating CDP
// events into the surface event union.
func (e *Engine) New(tabID string, handler Handler) (Surface, error) {
	ctx, cancel := chromedp.NewContext(e.allocCtx)

	// Start the target now so event listeners attach before any navigation.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start surface for tab %s: %w", tabID, err)
	}

	s := &chromeSurface{
		ctx:     ctx,
		cancel:  cancel,
		tabID:   tabID,
		handler: handler,
		logger:  e.logger,
		quality: e.quality,
		navWait: e.navWait,
	}
	s.listen()
	return s, nil
}

type chromeSurface struct {
	ctx     context.Context
	cancel  context.CancelFunc
	tabID   string
	handler Handler
	logger  logger.Logger
	quality int
	navWait time.Duration

	mu       sync.Mutex
	topFrame cdp.FrameID
}

func (s *chromeSurface) emit(ev Event) {
	s.handler(s.tabID, ev)
}

func (s *chromeSurface) isTopFrame(id cdp.FrameID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topFrame == "" || s.topFrame == id
}

// listen maps raw CDP notifications onto the surface event union.
func (s *chromeSurface) listen() {
	targetID := chromedp.FromContext(s.ctx).Target.TargetID

	chromedp.ListenTarget(s.ctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *page.EventFrameStartedLoading:
			if s.isTopFrame(e.FrameID) {
				s.emit(LoadStarted{})
			}
		case *page.EventFrameStoppedLoading:
			if s.isTopFrame(e.FrameID) {
				s.emit(LoadFinished{})
			}
		case *page.EventFrameNavigated:
			if e.Frame.ParentID != "" {
				return
			}
			s.mu.Lock()
			s.topFrame = e.Frame.ID
			s.mu.Unlock()
			s.emit(Navigated{URL: e.Frame.URL})
			if candidates := faviconCandidates(e.Frame.URL); len(candidates) > 0 {
				s.emit(FaviconUpdated{Candidates: candidates})
			}
		case *page.EventNavigatedWithinDocument:
			s.emit(NavigatedInPage{URL: e.URL, IsMainFrame: s.isTopFrame(e.FrameID)})
		case *page.EventWindowOpen:
			s.emit(NewWindowRequested{URL: e.URL})
		case *target.EventTargetInfoChanged:
			if e.TargetInfo.TargetID == targetID && e.TargetInfo.Title != "" {
				s.emit(TitleUpdated{Title: e.TargetInfo.Title})
			}
		}
	})
}

// faviconCandidates derives favicon URLs for a page. CDP has no favicon
// notification, so the conventional root icon is offered as the single
// candidate.
func faviconCandidates(pageURL string) []string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return []string{u.Scheme + "://" + u.Host + "/favicon.ico"}
}

// run issues actions without tying them to the caller's deadline: the
// surface outlives individual requests, and completion is reported via
// events.
func (s *chromeSurface) run(actions ...chromedp.Action) error {
	return chromedp.Run(s.ctx, actions...)
}

func (s *chromeSurface) Navigate(_ context.Context, rawURL string) error {
	go func() {
		ctx := s.ctx
		cancel := context.CancelFunc(func() {})
		if s.navWait > 0 {
			ctx, cancel = context.WithTimeout(s.ctx, s.navWait)
		}
		defer cancel()

		if err := chromedp.Run(ctx, chromedp.Navigate(rawURL)); err != nil && s.ctx.Err() == nil {
			s.logger.Warn("navigation failed",
				logger.String("tab_id", s.tabID),
				logger.String("url", rawURL),
				logger.Error(err))
		}
	}()
	return nil
}

func (s *chromeSurface) GoBack(_ context.Context) error {
	return s.run(chromedp.NavigateBack())
}

func (s *chromeSurface) GoForward(_ context.Context) error {
	return s.run(chromedp.NavigateForward())
}

func (s *chromeSurface) Reload(_ context.Context) error {
	return s.run(chromedp.Reload())
}

func (s *chromeSurface) CanGoBack(_ context.Context) bool {
	index, entries := s.navigationHistory()
	return index > 0 && len(entries) > 0
}

func (s *chromeSurface) CanGoForward(_ context.Context) bool {
	index, entries := s.navigationHistory()
	return len(entries) > 0 && index < int64(len(entries))-1
}

func (s *chromeSurface) navigationHistory() (int64, []*page.NavigationEntry) {
	var index int64
	var entries []*page.NavigationEntry
	err := s.run(chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		index, entries, err = page.GetNavigationHistory().Do(ctx)
		return err
	}))
	if err != nil {
		return 0, nil
	}
	return index, entries
}

func (s *chromeSurface) CapturePage(_ context.Context) ([]byte, error) {
	var buf []byte
	if err := s.run(chromedp.FullScreenshot(&buf, s.quality)); err != nil {
		return nil, fmt.Errorf("failed to capture tab %s: %w", s.tabID, err)
	}
	return buf, nil
}

func (s *chromeSurface) Close() error {
	s.cancel()
	return nil
}
