// Package reddit defines the data types and client abstraction used to fetch
// submissions, redditor activity and comment threads from a backing provider.
package reddit

import (
	"context"
	"time"

	"urs/pkg/domain"
)

// DeletedAuthor is the placeholder used when a submission or comment author
// has deleted their account.
const DeletedAuthor = "[deleted]"

// Submission is the serialized form of a Reddit submission. Field names are
// the wire format stored in job results and rendered by exports.
type Submission struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    string  `json:"created_utc"`
	Permalink     string  `json:"permalink"`
	URL           string  `json:"url"`
	Selftext      string  `json:"selftext"`
	IsSelf        bool    `json:"is_self"`
	NSFW          bool    `json:"nsfw"`
	Spoiler       bool    `json:"spoiler"`
	Stickied      bool    `json:"stickied"`
	Locked        bool    `json:"locked"`
	Distinguished string  `json:"distinguished,omitempty"`
	LinkFlairText string  `json:"link_flair_text,omitempty"`
}

// Comment is the serialized form of a Reddit comment. Depth and Replies are
// only populated when a comment tree is materialized.
type Comment struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	Score         int    `json:"score"`
	CreatedUTC    string `json:"created_utc"`
	Permalink     string `json:"permalink"`
	IsSubmitter   bool   `json:"is_submitter"`
	Stickied      bool   `json:"stickied"`
	Distinguished string `json:"distinguished,omitempty"`
	Edited        bool   `json:"edited"`
	ParentID      string `json:"parent_id"`

	Depth   int       `json:"depth"`
	Replies []Comment `json:"replies,omitempty"`
}

// RedditorInfo is the profile header of a redditor.
type RedditorInfo struct {
	Name         string `json:"name"`
	CreatedUTC   string `json:"created_utc,omitempty"`
	CommentKarma int    `json:"comment_karma"`
	LinkKarma    int    `json:"link_karma"`
	IsGold       bool   `json:"is_gold"`
	IsMod        bool   `json:"is_mod"`
	// Error is set instead of the karma fields when the profile header could
	// not be fetched (suspended accounts return 404 on /about).
	Error string `json:"error,omitempty"`
}

// Thread is a submission together with its comment forest. Comments keep the
// provider's nesting; flattening happens downstream when requested.
type Thread struct {
	Submission Submission `json:"submission_metadata"`
	Comments   []Comment  `json:"comments"`
	// TotalComments counts every comment in the forest, including replies.
	TotalComments int `json:"total_comments"`
}

// RateLimitStatus describes the API quota window reported by the provider on
// every authenticated response.
type RateLimitStatus struct {
	// Used is the number of requests spent in the current window.
	Used int
	// Remaining indicates how many requests are left in the current window.
	Remaining int
	// ResetAt is when the window resets.
	ResetAt time.Time
}

// ListingQuery controls pagination of listing endpoints.
type ListingQuery struct {
	// After is the fullname cursor returned by the previous page; empty for
	// the first page.
	After string
	// Limit is the page size. Providers cap this (Reddit at 100).
	Limit int
	// TimeFilter applies to top/controversial/search listings.
	TimeFilter domain.TimeFilter
	// Query is the search string for search listings.
	Query string
}

// SubmissionPage is one page of a submission listing.
type SubmissionPage struct {
	Items []Submission
	// After is the cursor for the next page; empty when exhausted.
	After string
}

// CommentPage is one page of a flat comment listing (redditor activity).
type CommentPage struct {
	Items []Comment
	After string
}

// Client is the abstraction for the Reddit data source. Implementations are
// expected to be safe for concurrent use.
//
//go:generate mockgen -package mockreddit -source=reddit.go -destination=mock/mockreddit.go *
type Client interface {
	// SubredditSubmissions returns one page of a subreddit listing for the
	// given category.
	SubredditSubmissions(ctx context.Context,
		subreddit string,
		category domain.SubredditCategory,
		q ListingQuery) (SubmissionPage, error)

	// RedditorAbout fetches the profile header of a redditor.
	RedditorAbout(ctx context.Context, username string) (*RedditorInfo, error)
	// RedditorSubmissions returns one page of the redditor's newest submissions.
	RedditorSubmissions(ctx context.Context, username string, q ListingQuery) (SubmissionPage, error)
	// RedditorComments returns one page of the redditor's newest comments.
	RedditorComments(ctx context.Context, username string, q ListingQuery) (CommentPage, error)

	// SubmissionThread fetches a submission and its comment forest by
	// submission URL. A limit of zero requests as many comments as the
	// provider returns in one call.
	SubmissionThread(ctx context.Context, url string, limit int) (*Thread, error)
}

// CountComments returns the total number of comments in a forest, including
// nested replies.
func CountComments(comments []Comment) int {
	n := 0
	for i := range comments {
		n += 1 + CountComments(comments[i].Replies)
	}

	return n
}

// FlattenComments returns the forest as a depth-first flat list with Depth
// and Replies cleared.
func FlattenComments(comments []Comment) []Comment {
	var out []Comment
	var walk func(cs []Comment)
	walk = func(cs []Comment) {
		for _, c := range cs {
			replies := c.Replies
			c.Replies = nil
			c.Depth = 0
			out = append(out, c)
			walk(replies)
		}
	}
	walk(comments)

	return out
}
