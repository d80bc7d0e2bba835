package scrape

import (
	"context"
	"errors"

	"urs/pkg/serrors"
)

// FriendlyMessage converts a scrape failure into the sentence stored on the
// job row and shown to the user. Semantic kinds from the Reddit client map
// to explanations; anything else falls back to a generic line so internals
// never leak into the UI.
func FriendlyMessage(err error) string {
	switch {
	case errors.Is(err, serrors.ErrUnauthorized):
		return "Reddit API authentication failed. Please check the Reddit credentials in your profile settings."
	case errors.Is(err, serrors.ErrForbidden):
		return "Access denied by Reddit. The subreddit may be private, quarantined or banned."
	case errors.Is(err, serrors.ErrNotFound):
		return "The requested subreddit, user or post could not be found. It may have been deleted or never existed."
	case errors.Is(err, serrors.ErrRateLimited):
		return "Reddit is rate limiting requests. Please wait a few minutes and try again."
	case errors.Is(err, serrors.ErrUnavailable):
		return "Reddit appears to be having issues right now. Please try again later."
	case errors.Is(err, serrors.ErrBadRequest):
		return "The scrape configuration was rejected. Please review it and try again."
	case errors.Is(err, context.DeadlineExceeded):
		return "The scrape took too long and was stopped. Try a smaller limit."
	default:
		return "Scraping failed due to an unexpected error. Please try again."
	}
}
