package redditapi_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"urs/pkg/domain"
	"urs/pkg/reddit"
	"urs/pkg/reddit/redditapi"
	"urs/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newTestClient wires a client whose token endpoint always succeeds and whose
// API requests are served by fn. tokenCalls counts token fetches.
func newTestClient(t *testing.T, tokenCalls *atomic.Int32, fn rtFunc) *redditapi.Client {
	t.Helper()

	transport := rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host == "www.reddit.com" {
			if tokenCalls != nil {
				tokenCalls.Add(1)
			}
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/access_token", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok, "token request must use basic auth")
			require.Equal(t, "client-id", user)
			require.Equal(t, "client-secret", pass)
			require.NotEmpty(t, r.Header.Get("User-Agent"))

			return jsonResponse(http.StatusOK, `{"access_token":"tok-1","expires_in":3600}`), nil
		}

		require.Equal(t, "oauth.reddit.com", r.URL.Host)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "1", r.URL.Query().Get("raw_json"))

		return fn(r)
	})

	return redditapi.New(&http.Client{Transport: transport}, "client-id", "client-secret", "tester")
}

const listingBody = `{
	"kind": "Listing",
	"data": {
		"after": "t3_next",
		"children": [
			{"kind": "t3", "data": {
				"id": "abc", "title": "First post", "author": "alice",
				"subreddit": "golang", "score": 42, "upvote_ratio": 0.97,
				"num_comments": 7, "created_utc": 1700000000,
				"permalink": "/r/golang/comments/abc/first_post/",
				"url": "https://example.com", "is_self": false, "over_18": true
			}},
			{"kind": "t3", "data": {
				"id": "def", "title": "Second post", "author": "",
				"subreddit": "golang", "score": 1, "created_utc": 0
			}}
		]
	}
}`

func TestClient_SubredditSubmissions_ParsesListing(t *testing.T) {
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/r/golang/hot", r.URL.Path)
		require.Equal(t, "25", r.URL.Query().Get("limit"))

		return jsonResponse(http.StatusOK, listingBody), nil
	})

	page, err := c.SubredditSubmissions(context.Background(), "golang", domain.CategoryHot,
		reddit.ListingQuery{Limit: 25})
	require.NoError(t, err)
	require.Equal(t, "t3_next", page.After)
	require.Len(t, page.Items, 2)

	first := page.Items[0]
	require.Equal(t, "abc", first.ID)
	require.Equal(t, "alice", first.Author)
	require.Equal(t, 42, first.Score)
	require.True(t, first.NSFW)
	require.Equal(t, time.Unix(1700000000, 0).UTC().Format(time.RFC3339), first.CreatedUTC)

	second := page.Items[1]
	require.Equal(t, reddit.DeletedAuthor, second.Author)
	require.Empty(t, second.CreatedUTC, "zero timestamp renders empty")
}

func TestClient_SubredditSubmissions_SearchQuery(t *testing.T) {
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/r/golang/search", r.URL.Path)
		require.Equal(t, "generics", r.URL.Query().Get("q"))
		require.Equal(t, "1", r.URL.Query().Get("restrict_sr"))
		require.Equal(t, "week", r.URL.Query().Get("t"))

		return jsonResponse(http.StatusOK, `{"kind":"Listing","data":{"after":"","children":[]}}`), nil
	})

	page, err := c.SubredditSubmissions(context.Background(), "golang", domain.CategorySearch,
		reddit.ListingQuery{Limit: 10, Query: "generics", TimeFilter: domain.TimeFilterWeek})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Empty(t, page.After)
}

func TestClient_SubredditSubmissions_InvalidCategory(t *testing.T) {
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no API request expected")

		return nil, nil
	})

	_, err := c.SubredditSubmissions(context.Background(), "golang",
		domain.SubredditCategory("spicy"), reddit.ListingQuery{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_TokenCachedAcrossRequests(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(t, &tokenCalls, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"kind":"Listing","data":{"after":"","children":[]}}`), nil
	})

	for range 3 {
		_, err := c.RedditorSubmissions(context.Background(), "spez", reddit.ListingQuery{Limit: 5})
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), tokenCalls.Load(), "token must be fetched once and cached")
}

func TestClient_TokenRejected(t *testing.T) {
	transport := rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, "unauthorized"), nil
	})
	c := redditapi.New(&http.Client{Transport: transport}, "bad-id", "bad-secret", "")

	_, err := c.RedditorAbout(context.Background(), "spez")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_TokenRejectedWith200Error(t *testing.T) {
	// reddit answers 200 with an error body for unknown client IDs
	transport := rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"error":"invalid_grant"}`), nil
	})
	c := redditapi.New(&http.Client{Transport: transport}, "bad-id", "bad-secret", "")

	_, err := c.RedditorAbout(context.Background(), "spez")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Contains(t, err.Error(), "invalid_grant")
}

func TestClient_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   serrors.Kind
	}{
		{http.StatusUnauthorized, serrors.ErrUnauthorized},
		{http.StatusForbidden, serrors.ErrForbidden},
		{http.StatusNotFound, serrors.ErrNotFound},
		{http.StatusTooManyRequests, serrors.ErrRateLimited},
		{http.StatusBadGateway, serrors.ErrUnavailable},
	}

	for _, tt := range tests {
		c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
			return jsonResponse(tt.status, "nope"), nil
		})

		_, err := c.RedditorAbout(context.Background(), "spez")
		require.ErrorIs(t, err, tt.kind, "status %d", tt.status)
	}
}

func TestClient_RedditorAbout(t *testing.T) {
	body := `{"kind":"t2","data":{"name":"spez","created_utc":1118030400,
		"comment_karma":100,"link_karma":200,"is_gold":true,"is_mod":true}}`
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/user/spez/about", r.URL.Path)

		return jsonResponse(http.StatusOK, body), nil
	})

	info, err := c.RedditorAbout(context.Background(), "spez")
	require.NoError(t, err)
	require.Equal(t, "spez", info.Name)
	require.Equal(t, 100, info.CommentKarma)
	require.Equal(t, 200, info.LinkKarma)
	require.True(t, info.IsGold)
	require.True(t, info.IsMod)
	require.NotEmpty(t, info.CreatedUTC)
}

func TestClient_RedditorComments(t *testing.T) {
	body := `{"kind":"Listing","data":{"after":"t1_zz","children":[
		{"kind":"t1","data":{"id":"c1","author":"spez","body":"hello","score":3,
			"created_utc":1700000000,"permalink":"/r/golang/comments/abc/x/c1/",
			"is_submitter":true,"edited":1700000100,"parent_id":"t3_abc"}},
		{"kind":"more","data":{}}
	]}}`
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/user/spez/comments", r.URL.Path)
		require.Equal(t, "new", r.URL.Query().Get("sort"))

		return jsonResponse(http.StatusOK, body), nil
	})

	page, err := c.RedditorComments(context.Background(), "spez", reddit.ListingQuery{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, "t1_zz", page.After)
	require.Len(t, page.Items, 1, "non-comment children are skipped")

	cm := page.Items[0]
	require.Equal(t, "c1", cm.ID)
	require.Equal(t, "hello", cm.Body)
	require.True(t, cm.IsSubmitter)
	require.True(t, cm.Edited, "numeric edited timestamp means edited")
	require.Equal(t, "t3_abc", cm.ParentID)
}

func TestClient_SubmissionThread(t *testing.T) {
	body := `[
		{"kind":"Listing","data":{"after":"","children":[
			{"kind":"t3","data":{"id":"abc","title":"Thread","author":"alice","num_comments":3}}
		]}},
		{"kind":"Listing","data":{"after":"","children":[
			{"kind":"t1","data":{"id":"top","author":"bob","body":"root","replies":
				{"kind":"Listing","data":{"children":[
					{"kind":"t1","data":{"id":"child","author":"carol","body":"nested","replies":""}}
				]}}
			}},
			{"kind":"more","data":{}}
		]}}
	]`
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/comments/abc", r.URL.Path)

		return jsonResponse(http.StatusOK, body), nil
	})

	thread, err := c.SubmissionThread(context.Background(),
		"https://www.reddit.com/r/golang/comments/abc/thread/", 0)
	require.NoError(t, err)
	require.Equal(t, "Thread", thread.Submission.Title)
	require.Len(t, thread.Comments, 1)
	require.Equal(t, "top", thread.Comments[0].ID)
	require.Zero(t, thread.Comments[0].Depth)
	require.Len(t, thread.Comments[0].Replies, 1)
	require.Equal(t, 1, thread.Comments[0].Replies[0].Depth)
	require.Equal(t, 2, thread.TotalComments)
}

func TestClient_SubmissionThread_BadURL(t *testing.T) {
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no API request expected")

		return nil, nil
	})

	_, err := c.SubmissionThread(context.Background(), "https://example.com/not-reddit", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestArticleIDFromURL(t *testing.T) {
	id, err := redditapi.ArticleIDFromURL("https://www.reddit.com/r/golang/comments/1abc23/some_title/")
	require.NoError(t, err)
	require.Equal(t, "1abc23", id)

	_, err = redditapi.ArticleIDFromURL("https://www.reddit.com/r/golang/")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = redditapi.ArticleIDFromURL("://broken")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestParseRateLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h := http.Header{}
	h.Set("X-Ratelimit-Used", "37")
	h.Set("X-Ratelimit-Remaining", "63.0")
	h.Set("X-Ratelimit-Reset", "120")

	rl := redditapi.ParseRateLimit(h, now)
	require.Equal(t, 37, rl.Used)
	require.Equal(t, 63, rl.Remaining, "fractional remaining is truncated")
	require.Equal(t, now.Add(2*time.Minute), rl.ResetAt)

	empty := redditapi.ParseRateLimit(http.Header{}, now)
	require.Zero(t, empty.Used)
	require.Zero(t, empty.Remaining)
	require.True(t, empty.ResetAt.IsZero())
}

func TestClient_LastRateLimit(t *testing.T) {
	c := newTestClient(t, nil, func(r *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusOK, `{"kind":"Listing","data":{"after":"","children":[]}}`)
		resp.Header.Set("X-Ratelimit-Used", "5")
		resp.Header.Set("X-Ratelimit-Remaining", "95.0")
		resp.Header.Set("X-Ratelimit-Reset", "300")

		return resp, nil
	})

	_, err := c.RedditorSubmissions(context.Background(), "spez", reddit.ListingQuery{Limit: 1})
	require.NoError(t, err)

	rl := c.LastRateLimit()
	require.Equal(t, 5, rl.Used)
	require.Equal(t, 95, rl.Remaining)
	require.False(t, rl.ResetAt.IsZero())
}
