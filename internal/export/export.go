// Package export renders stored scrape results as downloadable JSON,
// Markdown or PDF documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"urs/internal/scrape"
	"urs/pkg/domain"
	"urs/pkg/serrors"
)

// Format selects the rendering of an export.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// ParseFormat validates a format query parameter. Empty defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatPDF:
		return FormatPDF, nil
	}

	return "", serrors.With(serrors.ErrBadRequest, "unsupported export format: %q", s)
}

// File is a rendered export ready to be served as a download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Render produces the export of a completed job in the requested format.
func Render(job domain.ScrapeJob, format Format) (*File, error) {
	if job.Status != domain.JobStatusCompleted || len(job.Result) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "job has no results to export")
	}

	name := Filename(job, format)

	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, job.Result, "", "  "); err != nil {
			return nil, fmt.Errorf("could not format result: %w", err)
		}

		return &File{Name: name, ContentType: "application/json", Content: buf.Bytes()}, nil
	case FormatMarkdown:
		report, err := decodeReport(job)
		if err != nil {
			return nil, err
		}
		content, err := renderMarkdown(report)
		if err != nil {
			return nil, err
		}

		return &File{Name: name, ContentType: "text/markdown; charset=utf-8", Content: content}, nil
	case FormatPDF:
		report, err := decodeReport(job)
		if err != nil {
			return nil, err
		}
		content, err := renderPDF(report)
		if err != nil {
			return nil, err
		}

		return &File{Name: name, ContentType: "application/pdf", Content: content}, nil
	}

	return nil, serrors.With(serrors.ErrBadRequest, "unsupported export format: %q", format)
}

const filenameTimestamp = "20060102_150405"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Filename derives the download name from the job type, its config and the
// completion time.
func Filename(job domain.ScrapeJob, format Format) string {
	ts := job.CompletedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	stamp := ts.UTC().Format(filenameTimestamp)

	ext := string(format)
	if format == FormatMarkdown {
		ext = "md"
	}

	base := "results"
	switch job.Type {
	case domain.JobTypeSubreddit:
		var cfg domain.SubredditConfig
		if err := json.Unmarshal(job.Config, &cfg); err == nil && cfg.Subreddit != "" {
			category := string(cfg.Category)
			if category == "" {
				category = string(domain.CategoryHot)
			}
			base = sanitize(cfg.Subreddit) + "_" + sanitize(category)
		}
	case domain.JobTypeRedditor:
		var cfg domain.RedditorConfig
		if err := json.Unmarshal(job.Config, &cfg); err == nil && cfg.Username != "" {
			base = "u_" + sanitize(cfg.Username)
		}
	case domain.JobTypeComments:
		base = "comments"
	}

	return fmt.Sprintf("%s_%s.%s", base, stamp, ext)
}

func sanitize(s string) string {
	return unsafeFilenameChars.ReplaceAllString(s, "_")
}

// report is the decoded, type-tagged view of a stored result shared by the
// Markdown and PDF renderers.
type report struct {
	jobType   domain.JobType
	subreddit *scrape.SubredditResult
	redditor  *scrape.RedditorResult
	comments  *scrape.CommentsResult
}

func decodeReport(job domain.ScrapeJob) (*report, error) {
	r := &report{jobType: job.Type}

	var err error
	switch job.Type {
	case domain.JobTypeSubreddit:
		r.subreddit = &scrape.SubredditResult{}
		err = json.Unmarshal(job.Result, r.subreddit)
	case domain.JobTypeRedditor:
		r.redditor = &scrape.RedditorResult{}
		err = json.Unmarshal(job.Result, r.redditor)
	case domain.JobTypeComments:
		r.comments = &scrape.CommentsResult{}
		err = json.Unmarshal(job.Result, r.comments)
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown job type: %q", job.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode stored result: %w", err)
	}

	return r, nil
}

// settingsRows flattens a scrape_settings payload into sorted key/value rows
// for the settings table.
func settingsRows(raw json.RawMessage) [][]string {
	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprintf("%v", settings[k])})
	}

	return rows
}
