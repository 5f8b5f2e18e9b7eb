package models

import (
	"encoding/json"
	"time"
)

// Session identifies (or explicitly does not identify) the current viewer.
// A nil UserID means the session is anonymous.
type Session struct {
	ID       string  `json:"id"`
	UserID   *string `json:"userId"`
	Username string  `json:"username"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
// Safe to call on a nil session.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != nil && *s.UserID != ""
}

// Item is a non-authoritative snapshot of an auction listing. Price is the
// current highest bid; Bids and Likes are counts maintained by the backend.
type Item struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	OwnerID          string   `json:"ownerId"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	Price            float64  `json:"price"`
	Bids             int      `json:"bids"`
	Likes            int      `json:"likes"`
	EndingAt         FlexTime `json:"endingAt"`
	CreatedAt        FlexTime `json:"createdAt"`
	HighestBidUserID string   `json:"highestBidUserId,omitempty"`
}

// MinimumBid is the smallest amount the next bid may carry.
func (i Item) MinimumBid() float64 {
	return i.Price + 0.01
}

// BidHistoryPoint is one entry of an item's append-only bid history,
// rendered in whatever order the backend returned it.
type BidHistoryPoint struct {
	CreatedAt FlexTime `json:"createdAt"`
	Amount    float64  `json:"amount"`
}

// ItemResponse is the item-detail payload. The optional fields reflect the
// viewer's session and may be absent for anonymous viewers.
type ItemResponse struct {
	Item           Item              `json:"item"`
	UserHasHighBid bool              `json:"userHasHighBid"`
	UserLikes      bool              `json:"userLikes"`
	History        []BidHistoryPoint `json:"history"`
	SimilarItems   []Item            `json:"similarItems"`
}

// LikeResponse is the payload of the like/unlike endpoints. Both fields are
// optional: when the backend omits them the caller falls back to a locally
// computed value.
type LikeResponse struct {
	UserLikes *bool          `json:"userLikes"`
	Item      *LikeItemState `json:"item"`
}

// LikeItemState carries the authoritative like count when the backend
// includes it.
type LikeItemState struct {
	Likes *int `json:"likes"`
}

// ProfileResponse is the user-profile payload. SharedItems are items liked
// by both the viewer and the profile owner, computed server-side.
type ProfileResponse struct {
	Username    string `json:"username"`
	SharedItems []Item `json:"sharedItems"`
	LikedItems  []Item `json:"likedItems"`
}

// CreatedItem is the response to a successful item creation.
type CreatedItem struct {
	ID string `json:"id"`
}

// FlexTime is a timestamp the backend may encode either as an RFC 3339
// string or as an epoch-milliseconds number. An unparsable value decodes
// without error into an invalid FlexTime.
type FlexTime struct {
	t     time.Time
	valid bool
}

// NewFlexTime wraps a concrete time as a valid FlexTime.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t: t, valid: true}
}

// Time returns the parsed timestamp; meaningful only when Valid is true.
func (ft FlexTime) Time() time.Time { return ft.t }

// Valid reports whether the original value parsed to a timestamp.
func (ft FlexTime) Valid() bool { return ft.valid }

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	*ft = FlexTime{}

	if string(data) == "null" {
		return nil
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err == nil {
		ft.t = time.UnixMilli(int64(ms)).UTC()
		ft.valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ft.t = t
			ft.valid = true
			return nil
		}
	}

	// Unparsable values render as a placeholder, not as a decode failure.
	return nil
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if !ft.valid {
		return []byte("null"), nil
	}
	return json.Marshal(ft.t.Format(time.RFC3339))
}
