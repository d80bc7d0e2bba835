package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"urs/pkg/domain"
	"urs/pkg/reddit"
)

// ErrCancelled is returned by a ProgressFunc (and propagated by Run) when
// the job's row is no longer in the running state, i.e. the user cancelled
// it while the scrape was in flight.
var ErrCancelled = errors.New("job cancelled")

// ProgressFunc receives progress percentages as the scrape advances. The
// reported value never reaches 100; completion is signalled by Run
// returning. Implementations return ErrCancelled to abort the run.
type ProgressFunc func(ctx context.Context, percent int) error

// maxRunningProgress keeps the row below 100 until the result is actually
// stored, so a poller never sees a "done" percentage on an unfinished job.
const maxRunningProgress = 99

// Runner executes the scrape described by a job row against a Reddit
// client and produces the result payload.
type Runner struct {
	now func() time.Time
}

// NewRunner creates a Runner using the wall clock.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Run dispatches on the job type, decodes the stored config and returns the
// encoded result payload.
func (r *Runner) Run(ctx context.Context,
	client reddit.Client,
	jobType domain.JobType,
	config json.RawMessage,
	progress ProgressFunc) (json.RawMessage, error) {
	switch jobType {
	case domain.JobTypeSubreddit:
		var cfg domain.SubredditConfig
		if err := json.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("could not decode job config: %w", err)
		}

		return r.runSubreddit(ctx, client, cfg, config, progress)
	case domain.JobTypeRedditor:
		var cfg domain.RedditorConfig
		if err := json.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("could not decode job config: %w", err)
		}

		return r.runRedditor(ctx, client, cfg, config, progress)
	case domain.JobTypeComments:
		var cfg domain.CommentsConfig
		if err := json.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("could not decode job config: %w", err)
		}

		return r.runComments(ctx, client, cfg, config, progress)
	default:
		return nil, fmt.Errorf("unknown job type: %q", jobType)
	}
}

func (r *Runner) runSubreddit(ctx context.Context,
	client reddit.Client,
	cfg domain.SubredditConfig,
	rawCfg json.RawMessage,
	progress ProgressFunc) (json.RawMessage, error) {
	items, err := collectSubmissions(ctx, cfg.Limit, progress, 0, maxRunningProgress,
		func(ctx context.Context, q reddit.ListingQuery) (reddit.SubmissionPage, error) {
			q.TimeFilter = cfg.TimeFilter
			q.Query = cfg.SearchQuery

			return client.SubredditSubmissions(ctx, cfg.Subreddit, cfg.Category, q)
		})
	if err != nil {
		return nil, err
	}

	return marshalResult(SubredditResult{
		ScrapeSettings: rawCfg,
		Data:           items,
		TotalResults:   len(items),
		ScrapedAt:      scrapedAt(r.now()),
	})
}

func (r *Runner) runRedditor(ctx context.Context,
	client reddit.Client,
	cfg domain.RedditorConfig,
	rawCfg json.RawMessage,
	progress ProgressFunc) (json.RawMessage, error) {
	// Three phases: profile header, submissions, comments. The header is a
	// single request; the listings split the remaining progress budget.
	info, err := client.RedditorAbout(ctx, cfg.Username)
	if err != nil {
		// suspended accounts 404 on /about; record the miss in the header
		// and keep scraping the listings
		info = &reddit.RedditorInfo{
			Name:  cfg.Username,
			Error: "Could not fetch profile info",
		}
	}
	if err := progress(ctx, 10); err != nil {
		return nil, err
	}

	submissions, err := collectSubmissions(ctx, cfg.Limit, progress, 10, 55,
		func(ctx context.Context, q reddit.ListingQuery) (reddit.SubmissionPage, error) {
			return client.RedditorSubmissions(ctx, cfg.Username, q)
		})
	if err != nil {
		return nil, err
	}

	comments, err := collectComments(ctx, cfg.Limit, progress, 55, maxRunningProgress,
		func(ctx context.Context, q reddit.ListingQuery) (reddit.CommentPage, error) {
			return client.RedditorComments(ctx, cfg.Username, q)
		})
	if err != nil {
		return nil, err
	}

	return marshalResult(RedditorResult{
		ScrapeSettings: rawCfg,
		Data: RedditorData{
			Information: info,
			Submissions: submissions,
			Comments:    comments,
		},
		ScrapedAt: scrapedAt(r.now()),
	})
}

func (r *Runner) runComments(ctx context.Context,
	client reddit.Client,
	cfg domain.CommentsConfig,
	rawCfg json.RawMessage,
	progress ProgressFunc) (json.RawMessage, error) {
	if err := progress(ctx, 10); err != nil {
		return nil, err
	}

	thread, err := client.SubmissionThread(ctx, cfg.URL, cfg.Limit)
	if err != nil {
		return nil, err
	}
	if err := progress(ctx, 80); err != nil {
		return nil, err
	}

	result := *thread
	if !cfg.Tree() {
		result.Comments = reddit.FlattenComments(result.Comments)
	}
	result.TotalComments = reddit.CountComments(thread.Comments)

	if err := progress(ctx, maxRunningProgress); err != nil {
		return nil, err
	}

	return marshalResult(CommentsResult{
		ScrapeSettings: rawCfg,
		Data:           result,
		ScrapedAt:      scrapedAt(r.now()),
	})
}

// collectSubmissions pages through a listing until limit items are gathered
// or the cursor runs out, reporting progress linearly between from and to.
func collectSubmissions(ctx context.Context,
	limit int,
	progress ProgressFunc,
	from, to int,
	fetch func(ctx context.Context, q reddit.ListingQuery) (reddit.SubmissionPage, error)) ([]reddit.Submission, error) {
	items := make([]reddit.Submission, 0, limit)
	after := ""
	for len(items) < limit {
		page, err := fetch(ctx, reddit.ListingQuery{
			After: after,
			Limit: limit - len(items),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if len(items) > limit {
			items = items[:limit]
		}

		if err := progress(ctx, scaleProgress(len(items), limit, from, to)); err != nil {
			return nil, err
		}

		if page.After == "" || len(page.Items) == 0 {
			break
		}
		after = page.After
	}

	return items, nil
}

// collectComments is collectSubmissions for flat comment listings.
func collectComments(ctx context.Context,
	limit int,
	progress ProgressFunc,
	from, to int,
	fetch func(ctx context.Context, q reddit.ListingQuery) (reddit.CommentPage, error)) ([]reddit.Comment, error) {
	items := make([]reddit.Comment, 0, limit)
	after := ""
	for len(items) < limit {
		page, err := fetch(ctx, reddit.ListingQuery{
			After: after,
			Limit: limit - len(items),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if len(items) > limit {
			items = items[:limit]
		}

		if err := progress(ctx, scaleProgress(len(items), limit, from, to)); err != nil {
			return nil, err
		}

		if page.After == "" || len(page.Items) == 0 {
			break
		}
		after = page.After
	}

	return items, nil
}

// scaleProgress maps done/total onto the [from, to] window, clamped below
// maxRunningProgress.
func scaleProgress(done, total, from, to int) int {
	if total <= 0 {
		return min(to, maxRunningProgress)
	}
	if done > total {
		done = total
	}
	p := from + (to-from)*done/total
	if p > maxRunningProgress {
		p = maxRunningProgress
	}

	return p
}

func marshalResult(v any) (json.RawMessage, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not encode result: %w", err)
	}

	return out, nil
}
