package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"studio/app/domain"
	"studio/app/port"
)

// reviewRefreshDelay is how long the feed waits after a successful
// submission before re-fetching, giving the database time to surface the
// new row in the listing.
const reviewRefreshDelay = 600 * time.Millisecond

// ReviewFeed is the stateful paging controller over the review usecase.
// It accumulates pages, tracks the authoritative total and serializes
// submissions. All methods are safe for concurrent use.
type ReviewFeed struct {
	reviews  port.ReviewUsecase
	notifier port.Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	allReviews  []domain.Review
	count       int
	loading     bool
	loadingMore bool
	sending     bool
	loadFailed  bool

	sleep func(ctx context.Context, d time.Duration) error
}

// NewReviewFeed creates a feed controller.
func NewReviewFeed(reviews port.ReviewUsecase, notifier port.Notifier, logger *slog.Logger) *ReviewFeed {
	return &ReviewFeed{
		reviews:  reviews,
		notifier: notifier,
		logger:   logger.With("component", "review_feed"),
		sleep:    sleepCtx,
	}
}

// Snapshot is the feed state handed to rendering.
type Snapshot struct {
	Reviews     []domain.Review `json:"reviews"`
	Count       int             `json:"count"`
	Loading     bool            `json:"loading"`
	LoadingMore bool            `json:"loadingMore"`
	Sending     bool            `json:"sending"`
	LoadFailed  bool            `json:"loadFailed"`
	HasMore     bool            `json:"hasMore"`
}

// Snapshot returns a copy of the current feed state.
func (f *ReviewFeed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	reviews := make([]domain.Review, len(f.allReviews))
	copy(reviews, f.allReviews)

	return Snapshot{
		Reviews:     reviews,
		Count:       f.count,
		Loading:     f.loading,
		LoadingMore: f.loadingMore,
		Sending:     f.sending,
		LoadFailed:  f.loadFailed,
		HasMore:     len(f.allReviews) < f.count,
	}
}

// Load fetches the first page, replacing whatever was loaded before.
func (f *ReviewFeed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	f.loadFailed = false
	f.mu.Unlock()

	page, err := f.reviews.GetPage(ctx, ReviewPageSize, 0)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false

	if err != nil {
		f.loadFailed = true
		f.logger.Error("feed load failed", "error", err)
		return err
	}

	f.allReviews = page.Data
	f.count = page.Count
	return nil
}

// LoadMore appends the next page. It is a no-op while another fetch or a
// submission is in flight, and when everything is already loaded. The next
// offset is the number of reviews accumulated so far.
func (f *ReviewFeed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.loading || f.loadingMore || f.sending || len(f.allReviews) >= f.count {
		f.mu.Unlock()
		return nil
	}
	f.loadingMore = true
	offset := len(f.allReviews)
	f.mu.Unlock()

	page, err := f.reviews.GetPage(ctx, ReviewPageSize, offset)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadingMore = false

	if err != nil {
		f.loadFailed = true
		f.logger.Error("feed load-more failed", "offset", offset, "error", err)
		return err
	}

	f.allReviews = append(f.allReviews, page.Data...)
	f.count = page.Count
	return nil
}

// Submit sends a review on behalf of identity and, on success, re-fetches
// the first page after a short delay instead of splicing the new review in
// locally. A nil identity is rejected before touching the backend.
func (f *ReviewFeed) Submit(ctx context.Context, locale string, identity *domain.Identity, input domain.ReviewInput) error {
	if identity == nil {
		f.notifier.Error(locale, "AUTH_REQUIRED")
		return domain.ErrUnauthorized
	}

	f.mu.Lock()
	if f.sending {
		f.mu.Unlock()
		return nil
	}
	f.sending = true
	f.loadFailed = false
	f.mu.Unlock()

	err := f.reviews.Submit(ctx, *identity, input)

	f.mu.Lock()
	f.sending = false
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("review submission failed", "user_id", identity.ID, "error", err)
		f.notifier.Error(locale, "REVIEW_ERROR")
		return err
	}

	f.notifier.Success(locale, "REVIEW_INSERTED")

	if sleepErr := f.sleep(ctx, reviewRefreshDelay); sleepErr != nil {
		return nil
	}
	if loadErr := f.Load(ctx); loadErr != nil {
		f.logger.Warn("post-submit refresh failed", "error", loadErr)
	}
	return nil
}
