package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"urs/internal/scrape"
	"urs/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unauthorized points at credentials",
			err:  serrors.With(serrors.ErrUnauthorized, "authentication failed (HTTP 401)"),
			want: "Reddit API authentication failed. Please check the Reddit credentials in your profile settings.",
		},
		{
			name: "forbidden explains private subreddits",
			err:  serrors.With(serrors.ErrForbidden, "access forbidden (HTTP 403)"),
			want: "Access denied by Reddit. The subreddit may be private, quarantined or banned.",
		},
		{
			name: "not found",
			err:  serrors.KindOnly(serrors.ErrNotFound),
			want: "The requested subreddit, user or post could not be found. It may have been deleted or never existed.",
		},
		{
			name: "rate limited",
			err:  serrors.KindOnly(serrors.ErrRateLimited),
			want: "Reddit is rate limiting requests. Please wait a few minutes and try again.",
		},
		{
			name: "unavailable",
			err:  serrors.KindOnly(serrors.ErrUnavailable),
			want: "Reddit appears to be having issues right now. Please try again later.",
		},
		{
			name: "bad request",
			err:  serrors.KindOnly(serrors.ErrBadRequest),
			want: "The scrape configuration was rejected. Please review it and try again.",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("fetching page: %w", context.DeadlineExceeded),
			want: "The scrape took too long and was stopped. Try a smaller limit.",
		},
		{
			name: "anything else stays generic",
			err:  errors.New("pq: connection reset by peer"),
			want: "Scraping failed due to an unexpected error. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrape.FriendlyMessage(tt.err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFriendlyMessage_WrappedKindsStillMatch(t *testing.T) {
	cause := serrors.With(serrors.ErrNotFound, "not found (HTTP 404)")
	wrapped := fmt.Errorf("scraping r/gone: %w", cause)
	require.Contains(t, scrape.FriendlyMessage(wrapped), "could not be found")
}
