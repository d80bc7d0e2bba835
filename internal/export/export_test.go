package export_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"urs/internal/export"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var completedAt = time.Date(2025, 6, 1, 14, 30, 45, 0, time.UTC)

func subredditJob(t *testing.T) domain.ScrapeJob {
	t.Helper()

	result := `{
		"scrape_settings": {"subreddit":"golang","category":"top","limit":2,"time_filter":"week"},
		"data": [
			{"id":"abc","title":"Generics deep dive","author":"alice","subreddit":"golang",
			 "score":100,"upvote_ratio":0.95,"num_comments":12,
			 "created_utc":"2025-05-30T10:00:00Z","permalink":"/r/golang/comments/abc/x/",
			 "url":"https://example.com","selftext":"Long text here","is_self":true},
			{"id":"def","title":"Release notes","author":"bob","subreddit":"golang","score":50}
		],
		"total_results": 2,
		"scraped_at": "2025-06-01T14:30:00Z"
	}`

	return domain.ScrapeJob{
		Type:        domain.JobTypeSubreddit,
		Config:      json.RawMessage(`{"subreddit":"golang","category":"top","limit":2}`),
		Status:      domain.JobStatusCompleted,
		Progress:    100,
		Result:      json.RawMessage(result),
		CompletedAt: completedAt,
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"":         export.FormatJSON,
		"json":     export.FormatJSON,
		"JSON":     export.FormatJSON,
		"markdown": export.FormatMarkdown,
		"pdf":      export.FormatPDF,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got)
	}

	_, err := export.ParseFormat("docx")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRender_RequiresCompletedJobWithResult(t *testing.T) {
	job := subredditJob(t)
	job.Status = domain.JobStatusRunning

	_, err := export.Render(job, export.FormatJSON)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	job = subredditJob(t)
	job.Result = nil
	_, err = export.Render(job, export.FormatJSON)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRender_JSON(t *testing.T) {
	file, err := export.Render(subredditJob(t), export.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "application/json", file.ContentType)
	require.Equal(t, "golang_top_20250601_143045.json", file.Name)

	// output is the stored result, pretty printed
	require.JSONEq(t, string(subredditJob(t).Result), string(file.Content))
	require.Contains(t, string(file.Content), "\n  ")
}

func TestRender_Markdown(t *testing.T) {
	file, err := export.Render(subredditJob(t), export.FormatMarkdown)
	require.NoError(t, err)
	require.Equal(t, "text/markdown; charset=utf-8", file.ContentType)
	require.Equal(t, "golang_top_20250601_143045.md", file.Name)

	content := string(file.Content)
	require.Contains(t, content, "# Subreddit Scrape Results")
	require.Contains(t, content, "## Scrape Settings")
	require.Contains(t, content, "subreddit")
	require.Contains(t, content, "time_filter")
	require.Contains(t, content, "### Generics deep dive")
	require.Contains(t, content, "Author: u/alice")
	require.Contains(t, content, "> Long text here")
	require.Contains(t, content, "### Release notes")
}

func TestRender_Markdown_Redditor(t *testing.T) {
	result := `{
		"scrape_settings": {"username":"spez","limit":1},
		"data": {
			"information": {"name":"spez","comment_karma":100,"link_karma":200,
				"created_utc":"2005-06-06T04:00:00Z","is_gold":true,"is_mod":true},
			"submissions": [{"id":"s1","title":"Announcement","author":"spez","subreddit":"announcements"}],
			"comments": [{"id":"c1","author":"spez","body":"hello there","score":5}]
		},
		"scraped_at": "2025-06-01T14:30:00Z"
	}`
	job := domain.ScrapeJob{
		Type:        domain.JobTypeRedditor,
		Config:      json.RawMessage(`{"username":"spez","limit":1}`),
		Status:      domain.JobStatusCompleted,
		Result:      json.RawMessage(result),
		CompletedAt: completedAt,
	}

	file, err := export.Render(job, export.FormatMarkdown)
	require.NoError(t, err)
	require.Equal(t, "u_spez_20250601_143045.md", file.Name)

	content := string(file.Content)
	require.Contains(t, content, "# Redditor Scrape Results")
	require.Contains(t, content, "## u/spez")
	require.Contains(t, content, "Link karma")
	require.Contains(t, content, "200")
	require.Contains(t, content, "## Submissions (1)")
	require.Contains(t, content, "## Comments (1)")
	require.Contains(t, content, "> hello there")
}

func TestRender_Markdown_CommentTree(t *testing.T) {
	result := `{
		"scrape_settings": {"url":"https://reddit.com/r/golang/comments/abc/"},
		"data": {
			"submission_metadata": {"id":"abc","title":"Thread title","author":"alice"},
			"comments": [
				{"id":"root","author":"bob","body":"top level","score":10,
				 "replies":[{"id":"child","author":"carol","body":"nested reply","score":2,"depth":1}]}
			],
			"total_comments": 2
		},
		"scraped_at": "2025-06-01T14:30:00Z"
	}`
	job := domain.ScrapeJob{
		Type:        domain.JobTypeComments,
		Config:      json.RawMessage(`{"url":"https://reddit.com/r/golang/comments/abc/"}`),
		Status:      domain.JobStatusCompleted,
		Result:      json.RawMessage(result),
		CompletedAt: completedAt,
	}

	file, err := export.Render(job, export.FormatMarkdown)
	require.NoError(t, err)
	require.Equal(t, "comments_20250601_143045.md", file.Name)

	content := string(file.Content)
	require.Contains(t, content, "# Comment Thread Results")
	require.Contains(t, content, "### Thread title")
	require.Contains(t, content, "- **u/bob** (10 points): top level")
	require.Contains(t, content, "  - **u/carol** (2 points): nested reply")
}

func TestRender_PDF(t *testing.T) {
	file, err := export.Render(subredditJob(t), export.FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", file.ContentType)
	require.Equal(t, "golang_top_20250601_143045.pdf", file.Name)
	require.True(t, strings.HasPrefix(string(file.Content), "%PDF-"), "PDF magic header")
}

func TestFilename(t *testing.T) {
	job := subredditJob(t)
	require.Equal(t, "golang_top_20250601_143045.json", export.Filename(job, export.FormatJSON))
	require.Equal(t, "golang_top_20250601_143045.md", export.Filename(job, export.FormatMarkdown))

	// unsafe characters in the subreddit collapse into underscores
	job.Config = json.RawMessage(`{"subreddit":"r/weird name!"}`)
	name := export.Filename(job, export.FormatJSON)
	require.Equal(t, "r_weird_name__hot_20250601_143045.json", name)

	// unparseable config falls back to a generic base
	job.Config = json.RawMessage(`notjson`)
	require.Equal(t, "results_20250601_143045.json", export.Filename(job, export.FormatJSON))
}

func TestFilename_UsesNowWhenNotCompleted(t *testing.T) {
	job := subredditJob(t)
	job.CompletedAt = time.Time{}

	name := export.Filename(job, export.FormatJSON)
	require.True(t, strings.HasPrefix(name, "golang_top_"))
	require.True(t, strings.HasSuffix(name, ".json"))
}
