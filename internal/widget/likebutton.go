package widget

import (
	"context"
	"sync"

	"rbay-web/internal/backend"
	"rbay-web/internal/models"
)

// LikeToggle tracks the viewer's like state for one item. State is seeded
// from the server-rendered item payload and only changes after the backend
// confirms a toggle: server-reported values win, with a locally computed
// fallback when the response omits them.
type LikeToggle struct {
	mu         sync.Mutex
	client     backend.Client
	itemID     string
	authCookie string

	liked   bool
	count   int
	pending bool
	errText string
}

// NewLikeToggle seeds a toggle from server-provided initial values
func NewLikeToggle(client backend.Client, itemID, authCookie string, initialLikes int, initialUserLikes bool) *LikeToggle {
	return &LikeToggle{
		client:     client,
		itemID:     itemID,
		authCookie: authCookie,
		liked:      initialUserLikes,
		count:      initialLikes,
	}
}

// Toggle flips the like state through the backend. The request method is
// chosen from the current local flag: DELETE to unlike, POST to like.
// A toggle arriving while another is in flight is a no-op.
func (w *LikeToggle) Toggle(ctx context.Context) {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.errText = ""
	liked := w.liked
	count := w.count
	w.mu.Unlock()

	var resp *models.LikeResponse
	var err error
	if liked {
		resp, err = w.client.Unlike(ctx, w.authCookie, w.itemID)
	} else {
		resp, err = w.client.Like(ctx, w.authCookie, w.itemID)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = false

	if err != nil {
		// Prior liked/count stand untouched
		w.errText = err.Error()
		return
	}

	nextLiked := !liked
	if resp.UserLikes != nil {
		nextLiked = *resp.UserLikes
	}

	nextCount := count - 1
	if nextLiked {
		nextCount = count + 1
	}
	if nextCount < 0 {
		nextCount = 0
	}
	if resp.Item != nil && resp.Item.Likes != nil {
		nextCount = *resp.Item.Likes
	}

	w.liked = nextLiked
	w.count = nextCount
}

// State returns the current liked flag, like count and in-flight marker
func (w *LikeToggle) State() (liked bool, count int, pending bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.liked, w.count, w.pending
}

// Err returns the error text of the last failed toggle, if any
func (w *LikeToggle) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errText
}
