// Package redditapi provides a reddit.Client implementation backed by the
// official Reddit OAuth2 JSON API using application-only authentication.
package redditapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"urs/pkg/domain"
	"urs/pkg/reddit"
	"urs/pkg/serrors"
)

const (
	tokenURL = "https://www.reddit.com/api/v1/access_token" //nolint: gosec
	apiBase  = "https://oauth.reddit.com"

	// maxPageSize is the largest page Reddit serves for listing endpoints.
	maxPageSize = 100
	// defaultThreadLimit is requested when a comment scrape asks for "all"
	// comments. Reddit serves at most roughly this many comments per call;
	// deeper pagination via morechildren is not implemented.
	defaultThreadLimit = 500

	// tokenExpiryMargin renews the cached token slightly before the server
	// side expiry to avoid racing it.
	tokenExpiryMargin = 30 * time.Second
)

// Client talks to the Reddit OAuth2 API and fulfills the reddit.Client
// interface. It is safe for concurrent use; the bearer token is fetched
// lazily and cached until shortly before expiry.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	userAgent    string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
	lastRL   reddit.RateLimitStatus
}

// Ensure Client conforms to the reddit.Client interface at compile time.
var _ reddit.Client = (*Client)(nil)

// New constructs a Client using the given http.Client and Reddit application
// credentials. username is only used to build a descriptive User-Agent, as
// Reddit requires one for every request.
func New(httpClient *http.Client, clientID, clientSecret, username string) *Client {
	if username == "" {
		username = "user"
	}

	return &Client{
		httpClient:   httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    fmt.Sprintf("urs-saas/1.0 by %s", username),
	}
}

// ParseRateLimit extracts Reddit rate-limit information from response headers.
// Remaining is served as a float ("99.0"), reset as seconds until the window
// rolls over.
func ParseRateLimit(h http.Header, now time.Time) reddit.RateLimitStatus {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}

		return 0
	}

	rl := reddit.RateLimitStatus{
		Used:      atoi(h.Get("X-Ratelimit-Used")),
		Remaining: atoi(h.Get("X-Ratelimit-Remaining")),
	}
	if secs := atoi(h.Get("X-Ratelimit-Reset")); secs > 0 {
		rl.ResetAt = now.Add(time.Duration(secs) * time.Second)
	}

	return rl
}

// LastRateLimit returns the most recently observed rate-limit status.
func (c *Client) LastRateLimit() reddit.RateLimitStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastRL
}

// ensureToken returns a valid bearer token, fetching a new one through the
// client-credentials grant when the cached token is missing or about to expire.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExp.Add(-tokenExpiryMargin)) {
		token := c.token
		c.mu.Unlock()

		return token, nil
	}
	c.mu.Unlock()

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("could not create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send token request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read token response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", serrors.With(serrors.ErrUnauthorized, "invalid API credentials")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token request failed: %s", strings.TrimSpace(string(b)))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(b, &tokenResp); err != nil {
		return "", fmt.Errorf("could not decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		// reddit responds 200 with {"error":"invalid_grant"} style bodies
		return "", serrors.With(serrors.ErrUnauthorized, "token request rejected: %s", tokenResp.Error)
	}

	c.mu.Lock()
	c.token = tokenResp.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return tokenResp.AccessToken, nil
}

// get performs an authenticated GET against the API and returns the body.
// HTTP error statuses are mapped to semantic error kinds.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("raw_json", "1")

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, apiBase+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach reddit")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.mu.Lock()
	c.lastRL = ParseRateLimit(resp.Header, time.Now())
	c.mu.Unlock()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication failed (HTTP 401)")
	case resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrForbidden, "access forbidden (HTTP 403)")
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "not found (HTTP 404)")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited (HTTP 429)")
	case resp.StatusCode >= 500:
		return nil, serrors.With(serrors.ErrUnavailable, "reddit server error (HTTP %d)", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("request failed (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

// SubredditSubmissions returns one page of a subreddit listing.
func (c *Client) SubredditSubmissions(ctx context.Context,
	subreddit string,
	category domain.SubredditCategory,
	q reddit.ListingQuery) (reddit.SubmissionPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageSize(q.Limit)))
	if q.After != "" {
		query.Set("after", q.After)
	}

	var path string
	switch category {
	case domain.CategorySearch:
		path = "/r/" + url.PathEscape(subreddit) + "/search"
		query.Set("q", q.Query)
		query.Set("restrict_sr", "1")
		query.Set("t", timeFilter(q.TimeFilter))
	case domain.CategoryTop, domain.CategoryControversial:
		path = "/r/" + url.PathEscape(subreddit) + "/" + string(category)
		query.Set("t", timeFilter(q.TimeFilter))
	case domain.CategoryHot, domain.CategoryNew, domain.CategoryRising:
		path = "/r/" + url.PathEscape(subreddit) + "/" + string(category)
	default:
		return reddit.SubmissionPage{}, serrors.With(serrors.ErrBadRequest, "invalid category: %q", category)
	}

	b, err := c.get(ctx, path, query)
	if err != nil {
		return reddit.SubmissionPage{}, err
	}

	return parseSubmissionListing(b)
}

// RedditorAbout fetches the profile header of a redditor.
func (c *Client) RedditorAbout(ctx context.Context, username string) (*reddit.RedditorInfo, error) {
	b, err := c.get(ctx, "/user/"+url.PathEscape(username)+"/about", nil)
	if err != nil {
		return nil, err
	}

	var t thing
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("could not decode about response: %w", err)
	}

	var raw struct {
		Name         string  `json:"name"`
		CreatedUTC   float64 `json:"created_utc"`
		CommentKarma int     `json:"comment_karma"`
		LinkKarma    int     `json:"link_karma"`
		IsGold       bool    `json:"is_gold"`
		IsMod        bool    `json:"is_mod"`
	}
	if err := json.Unmarshal(t.Data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode redditor info: %w", err)
	}

	return &reddit.RedditorInfo{
		Name:         raw.Name,
		CreatedUTC:   formatTimestamp(raw.CreatedUTC),
		CommentKarma: raw.CommentKarma,
		LinkKarma:    raw.LinkKarma,
		IsGold:       raw.IsGold,
		IsMod:        raw.IsMod,
	}, nil
}

// RedditorSubmissions returns one page of the redditor's newest submissions.
func (c *Client) RedditorSubmissions(ctx context.Context,
	username string,
	q reddit.ListingQuery) (reddit.SubmissionPage, error) {
	query := url.Values{}
	query.Set("sort", "new")
	query.Set("limit", strconv.Itoa(pageSize(q.Limit)))
	if q.After != "" {
		query.Set("after", q.After)
	}

	b, err := c.get(ctx, "/user/"+url.PathEscape(username)+"/submitted", query)
	if err != nil {
		return reddit.SubmissionPage{}, err
	}

	return parseSubmissionListing(b)
}

// RedditorComments returns one page of the redditor's newest comments.
func (c *Client) RedditorComments(ctx context.Context,
	username string,
	q reddit.ListingQuery) (reddit.CommentPage, error) {
	query := url.Values{}
	query.Set("sort", "new")
	query.Set("limit", strconv.Itoa(pageSize(q.Limit)))
	if q.After != "" {
		query.Set("after", q.After)
	}

	b, err := c.get(ctx, "/user/"+url.PathEscape(username)+"/comments", query)
	if err != nil {
		return reddit.CommentPage{}, err
	}

	var root thing
	if err := json.Unmarshal(b, &root); err != nil {
		return reddit.CommentPage{}, fmt.Errorf("could not decode listing: %w", err)
	}
	var data listingData
	if err := json.Unmarshal(root.Data, &data); err != nil {
		return reddit.CommentPage{}, fmt.Errorf("could not decode listing data: %w", err)
	}

	page := reddit.CommentPage{After: data.After}
	for _, child := range data.Children {
		if child.Kind != kindComment {
			continue
		}
		cm, err := parseComment(child.Data, 0, false)
		if err != nil {
			return reddit.CommentPage{}, err
		}
		page.Items = append(page.Items, *cm)
	}

	return page, nil
}

// articleIDPattern extracts the submission ID from a Reddit permalink.
var articleIDPattern = regexp.MustCompile(`/comments/([a-z0-9]+)`)

// ArticleIDFromURL extracts the base36 submission ID from a submission URL.
func ArticleIDFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid submission URL")
	}

	m := articleIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return "", serrors.With(serrors.ErrBadRequest, "URL does not point to a reddit submission: %s", rawURL)
	}

	return m[1], nil
}

// SubmissionThread fetches a submission and its comment forest by URL.
func (c *Client) SubmissionThread(ctx context.Context, rawURL string, limit int) (*reddit.Thread, error) {
	article, err := ArticleIDFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultThreadLimit {
		limit = defaultThreadLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	b, err := c.get(ctx, "/comments/"+article, query)
	if err != nil {
		return nil, err
	}

	// the comments endpoint returns a two-element array:
	// [0] a listing holding the submission, [1] the comment forest
	var listings []thing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, fmt.Errorf("could not decode thread response: %w", err)
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("unexpected thread response shape")
	}

	subPage, err := parseListingThing(listings[0])
	if err != nil {
		return nil, err
	}
	if len(subPage.Items) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "submission not found")
	}

	var forestData listingData
	if err := json.Unmarshal(listings[1].Data, &forestData); err != nil {
		return nil, fmt.Errorf("could not decode comment forest: %w", err)
	}

	comments, err := parseCommentForest(forestData.Children, 0)
	if err != nil {
		return nil, err
	}

	return &reddit.Thread{
		Submission:    subPage.Items[0],
		Comments:      comments,
		TotalComments: reddit.CountComments(comments),
	}, nil
}

const (
	kindSubmission = "t3"
	kindComment    = "t1"
)

// thing is the generic kind/data envelope Reddit wraps every entity in.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listingData struct {
	After    string  `json:"after"`
	Children []thing `json:"children"`
}

func pageSize(limit int) int {
	if limit <= 0 || limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

func timeFilter(f domain.TimeFilter) string {
	if f == "" {
		return string(domain.TimeFilterAll)
	}

	return string(f)
}

// formatTimestamp converts a UNIX timestamp to ISO 8601 UTC.
func formatTimestamp(ts float64) string {
	if ts == 0 {
		return ""
	}

	return time.Unix(int64(ts), 0).UTC().Format(time.RFC3339)
}

func parseSubmissionListing(b []byte) (reddit.SubmissionPage, error) {
	var root thing
	if err := json.Unmarshal(b, &root); err != nil {
		return reddit.SubmissionPage{}, fmt.Errorf("could not decode listing: %w", err)
	}

	return parseListingThing(root)
}

func parseListingThing(root thing) (reddit.SubmissionPage, error) {
	var data listingData
	if err := json.Unmarshal(root.Data, &data); err != nil {
		return reddit.SubmissionPage{}, fmt.Errorf("could not decode listing data: %w", err)
	}

	page := reddit.SubmissionPage{After: data.After}
	for _, child := range data.Children {
		if child.Kind != kindSubmission {
			continue
		}
		s, err := parseSubmission(child.Data)
		if err != nil {
			return reddit.SubmissionPage{}, err
		}
		page.Items = append(page.Items, *s)
	}

	return page, nil
}

func parseSubmission(data json.RawMessage) (*reddit.Submission, error) {
	var raw struct {
		ID            string  `json:"id"`
		Title         string  `json:"title"`
		Author        string  `json:"author"`
		Subreddit     string  `json:"subreddit"`
		Score         int     `json:"score"`
		UpvoteRatio   float64 `json:"upvote_ratio"`
		NumComments   int     `json:"num_comments"`
		CreatedUTC    float64 `json:"created_utc"`
		Permalink     string  `json:"permalink"`
		URL           string  `json:"url"`
		Selftext      string  `json:"selftext"`
		IsSelf        bool    `json:"is_self"`
		Over18        bool    `json:"over_18"`
		Spoiler       bool    `json:"spoiler"`
		Stickied      bool    `json:"stickied"`
		Locked        bool    `json:"locked"`
		Distinguished string  `json:"distinguished"`
		LinkFlairText string  `json:"link_flair_text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode submission: %w", err)
	}

	author := raw.Author
	if author == "" {
		author = reddit.DeletedAuthor
	}

	return &reddit.Submission{
		ID:            raw.ID,
		Title:         raw.Title,
		Author:        author,
		Subreddit:     raw.Subreddit,
		Score:         raw.Score,
		UpvoteRatio:   raw.UpvoteRatio,
		NumComments:   raw.NumComments,
		CreatedUTC:    formatTimestamp(raw.CreatedUTC),
		Permalink:     raw.Permalink,
		URL:           raw.URL,
		Selftext:      raw.Selftext,
		IsSelf:        raw.IsSelf,
		NSFW:          raw.Over18,
		Spoiler:       raw.Spoiler,
		Stickied:      raw.Stickied,
		Locked:        raw.Locked,
		Distinguished: raw.Distinguished,
		LinkFlairText: raw.LinkFlairText,
	}, nil
}

// parseComment decodes a single comment. When withReplies is set, the nested
// reply listing is materialized recursively with increasing depth.
func parseComment(data json.RawMessage, depth int, withReplies bool) (*reddit.Comment, error) {
	var raw struct {
		ID            string          `json:"id"`
		Author        string          `json:"author"`
		Body          string          `json:"body"`
		Score         int             `json:"score"`
		CreatedUTC    float64         `json:"created_utc"`
		Permalink     string          `json:"permalink"`
		IsSubmitter   bool            `json:"is_submitter"`
		Stickied      bool            `json:"stickied"`
		Distinguished string          `json:"distinguished"`
		Edited        json.RawMessage `json:"edited"`
		ParentID      string          `json:"parent_id"`
		Replies       json.RawMessage `json:"replies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode comment: %w", err)
	}

	author := raw.Author
	if author == "" {
		author = reddit.DeletedAuthor
	}

	// edited is either false or the edit timestamp
	edited := false
	if s := string(raw.Edited); s != "" && s != "false" && s != "null" {
		edited = true
	}

	cm := &reddit.Comment{
		ID:            raw.ID,
		Author:        author,
		Body:          raw.Body,
		Score:         raw.Score,
		CreatedUTC:    formatTimestamp(raw.CreatedUTC),
		Permalink:     raw.Permalink,
		IsSubmitter:   raw.IsSubmitter,
		Stickied:      raw.Stickied,
		Distinguished: raw.Distinguished,
		Edited:        edited,
		ParentID:      raw.ParentID,
		Depth:         depth,
	}

	// replies is an empty string for leaf comments, a listing otherwise
	if withReplies && len(raw.Replies) > 0 && string(raw.Replies) != `""` {
		var repliesThing thing
		if err := json.Unmarshal(raw.Replies, &repliesThing); err != nil {
			return nil, fmt.Errorf("could not decode replies: %w", err)
		}
		var repliesData listingData
		if err := json.Unmarshal(repliesThing.Data, &repliesData); err != nil {
			return nil, fmt.Errorf("could not decode replies listing: %w", err)
		}

		children, err := parseCommentForest(repliesData.Children, depth+1)
		if err != nil {
			return nil, err
		}
		cm.Replies = children
	}

	return cm, nil
}

// parseCommentForest converts listing children into a comment forest,
// skipping "more" placeholders.
func parseCommentForest(children []thing, depth int) ([]reddit.Comment, error) {
	var out []reddit.Comment
	for _, child := range children {
		if child.Kind != kindComment {
			// kindMore placeholders require the morechildren endpoint; they
			// are skipped, matching the single-request thread snapshot.
			continue
		}
		cm, err := parseComment(child.Data, depth, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *cm)
	}

	return out, nil
}
