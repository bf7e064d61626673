package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/ports"
)

// View is an immutable snapshot of the derived view state, recomputed
// from scratch on every read so it can never desync from the record set.
type View struct {
	Counts        domain.StatusCounts
	FilteredCount int
	Page          int
	PageCount     int
	PageSize      int
	SearchQuery   string
	StatusFilter  domain.Status
	TotalCount    int
	Visible       []domain.Application
}

// ViewEngine owns the working record set, the active filter inputs,
// the pagination cursor, and the server-sourced aggregate counts. It
// reconciles local state with the remote store after every mutation.
//
// Overlapping Refresh calls are sequence-numbered: only the result of
// the last-issued refresh is ever applied, so a slow stale response
// cannot overwrite a newer one.
type ViewEngine struct {
	client   ports.ApplicationClient
	sessions *SessionService
	onReauth func() // fired once per expiry episode; may be nil

	mu              sync.Mutex
	counts          domain.StatusCounts
	expiredSignaled bool
	issuedSeq       uint64
	page            int
	pageSize        int
	pendingDeleteID string
	records         []domain.Application
	searchQuery     string
	statusFilter    domain.Status
}

// NewViewEngine creates an engine over the given client. onReauth is
// invoked (at most once per expiry) when the server rejects the
// credential; pass nil when no re-authentication surface exists.
func NewViewEngine(client ports.ApplicationClient, sessions *SessionService, pageSize int, onReauth func()) *ViewEngine {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ViewEngine{
		client:   client,
		counts:   domain.StatusCounts{},
		onReauth: onReauth,
		pageSize: pageSize,
		sessions: sessions,
	}
}

// Refresh fetches the record set and the aggregate counts and replaces
// both atomically, resetting the page to 0. If a newer refresh was
// issued while this one was in flight, its result is discarded. On
// session expiry the stale data stays visible; the session is cleared
// and the re-auth signal fires instead.
func (e *ViewEngine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	e.issuedSeq++
	seq := e.issuedSeq
	e.mu.Unlock()

	var (
		records []domain.Application
		counts  domain.StatusCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = e.client.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = e.client.StatusCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return e.translate(ctx, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.issuedSeq {
		logging.Logger.Debug("Discarding stale refresh result", "seq", seq, "latest", e.issuedSeq)
		return nil
	}
	e.records = records
	e.counts = counts
	e.page = 0
	e.expiredSignaled = false
	return nil
}

// SetSearch updates the free-text query and resets the page to 0
func (e *ViewEngine) SetSearch(query string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searchQuery = query
	e.page = 0
}

// SetStatusFilter updates the status filter ("" means all) and resets
// the page to 0.
func (e *ViewEngine) SetStatusFilter(status domain.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statusFilter = status
	e.page = 0
}

// SetPage moves the pagination cursor, clamping to the last valid page
// for the current filtered count (or 0 when the filtered set is empty).
func (e *ViewEngine) SetPage(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = clampPage(n, len(e.filteredLocked()), e.pageSize)
}

// SetPageSize changes the rows-per-page, clamping the current page so
// the view never points past the end of the filtered set.
func (e *ViewEngine) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pageSize = n
	e.page = clampPage(e.page, len(e.filteredLocked()), e.pageSize)
}

// RequestDelete marks a record for deletion. Nothing is deleted until
// ConfirmDelete; a later request replaces the pending marker.
func (e *ViewEngine) RequestDelete(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDeleteID = id
}

// CancelDelete clears the pending-delete marker
func (e *ViewEngine) CancelDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDeleteID = ""
}

// PendingDelete returns the record marked for deletion, if any
func (e *ViewEngine) PendingDelete() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingDeleteID, e.pendingDeleteID != ""
}

// ConfirmDelete deletes the pending record and then re-fetches, so the
// aggregate counts stay consistent with the server's view. The refresh
// begins only after the delete resolves. On failure the marker is
// cleared, the record set is left unchanged, and the error surfaces.
func (e *ViewEngine) ConfirmDelete(ctx context.Context) error {
	e.mu.Lock()
	id := e.pendingDeleteID
	e.mu.Unlock()
	if id == "" {
		return errors.New("no deletion pending")
	}

	err := e.client.Delete(ctx, id)

	e.mu.Lock()
	e.pendingDeleteID = ""
	e.mu.Unlock()

	if err != nil {
		return e.translate(ctx, err)
	}
	return e.Refresh(ctx)
}

// Save validates the draft, routes to create or update based on the
// presence of an ID, and re-fetches on success. A validation failure
// never reaches the network.
func (e *ViewEngine) Save(ctx context.Context, id string, draft domain.Draft) error {
	if fields := domain.ValidateDraft(draft); len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	var err error
	if id == "" {
		_, err = e.client.Create(ctx, draft)
	} else {
		_, err = e.client.Update(ctx, id, domain.PatchFromDraft(draft))
	}
	if err != nil {
		return e.translate(ctx, err)
	}
	return e.Refresh(ctx)
}

// SessionRenewed re-arms the expiry signal after a successful login
func (e *ViewEngine) SessionRenewed() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expiredSignaled = false
}

// Snapshot derives the visible page and its surrounding metadata from
// the four filter/pagination inputs. Always computed from scratch.
func (e *ViewEngine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := e.filteredLocked()
	page := clampPage(e.page, len(filtered), e.pageSize)

	start := page * e.pageSize
	end := start + e.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	visible := make([]domain.Application, end-start)
	copy(visible, filtered[start:end])

	counts := make(domain.StatusCounts, len(e.counts))
	for status, count := range e.counts {
		counts[status] = count
	}

	return View{
		Counts:        counts,
		FilteredCount: len(filtered),
		Page:          page,
		PageCount:     pageCount(len(filtered), e.pageSize),
		PageSize:      e.pageSize,
		SearchQuery:   e.searchQuery,
		StatusFilter:  e.statusFilter,
		TotalCount:    len(e.records),
		Visible:       visible,
	}
}

// filteredLocked returns the records matching both predicates, in
// original fetch order. Callers must hold e.mu.
func (e *ViewEngine) filteredLocked() []domain.Application {
	query := strings.ToLower(e.searchQuery)
	var filtered []domain.Application
	for _, app := range e.records {
		if !matchesSearch(app, query) {
			continue
		}
		if e.statusFilter != "" && app.Status != e.statusFilter {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}

// matchesSearch reports whether the case-folded query is a substring
// of the company name, job title, or location. An empty query matches.
func matchesSearch(app domain.Application, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(app.CompanyName), query) ||
		strings.Contains(strings.ToLower(app.JobTitle), query) ||
		strings.Contains(strings.ToLower(app.Location), query)
}

// translate recovers from session expiry (clear session, signal
// re-auth at most once, keep stale data) and passes every other
// failure through untouched.
func (e *ViewEngine) translate(ctx context.Context, err error) error {
	if !errors.Is(err, domain.ErrSessionExpired) {
		return err
	}

	e.mu.Lock()
	alreadySignaled := e.expiredSignaled
	e.expiredSignaled = true
	e.mu.Unlock()

	if !alreadySignaled {
		logging.Logger.Info("Session expired, clearing credentials")
		e.sessions.Clear(ctx)
		if e.onReauth != nil {
			e.onReauth()
		}
	}
	return err
}

func clampPage(n, filteredCount, pageSize int) int {
	if n < 0 {
		return 0
	}
	last := 0
	if filteredCount > 0 && pageSize > 0 {
		last = (filteredCount - 1) / pageSize
	}
	if n > last {
		return last
	}
	return n
}

func pageCount(filteredCount, pageSize int) int {
	if filteredCount == 0 || pageSize <= 0 {
		return 1
	}
	return (filteredCount + pageSize - 1) / pageSize
}
