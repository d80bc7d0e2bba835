package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"urs/pkg/domain"
	"urs/pkg/reddit"

	"github.com/nao1215/markdown"
)

// renderMarkdown builds the Markdown report for a decoded result.
func renderMarkdown(r *report) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	switch r.jobType {
	case domain.JobTypeSubreddit:
		writeSubredditMarkdown(md, r)
	case domain.JobTypeRedditor:
		writeRedditorMarkdown(md, r)
	case domain.JobTypeComments:
		writeCommentsMarkdown(md, r)
	}

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("could not build markdown: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSettingsTable(md *markdown.Markdown, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	md.H2("Scrape Settings")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Setting", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeSubredditMarkdown(md *markdown.Markdown, r *report) {
	res := r.subreddit
	md.H1("Subreddit Scrape Results")
	md.PlainText("")
	md.PlainTextf("Scraped at %s. %d submissions.", res.ScrapedAt, res.TotalResults)
	md.PlainText("")

	writeSettingsTable(md, settingsRows(res.ScrapeSettings))

	md.H2("Submissions")
	md.PlainText("")
	for i := range res.Data {
		writeSubmissionMarkdown(md, &res.Data[i])
	}
}

func writeSubmissionMarkdown(md *markdown.Markdown, s *reddit.Submission) {
	md.H3(s.Title)
	md.PlainText("")
	md.BulletList(
		"Author: u/"+s.Author,
		"Subreddit: r/"+s.Subreddit,
		"Score: "+strconv.Itoa(s.Score)+
			" (upvote ratio "+strconv.FormatFloat(s.UpvoteRatio, 'f', 2, 64)+")",
		"Comments: "+strconv.Itoa(s.NumComments),
		"Posted: "+s.CreatedUTC,
		"Link: https://reddit.com"+s.Permalink,
	)
	md.PlainText("")
	if s.Selftext != "" {
		md.Blockquote(s.Selftext)
		md.PlainText("")
	}
}

func writeRedditorMarkdown(md *markdown.Markdown, r *report) {
	res := r.redditor
	md.H1("Redditor Scrape Results")
	md.PlainText("")
	md.PlainTextf("Scraped at %s.", res.ScrapedAt)
	md.PlainText("")

	writeSettingsTable(md, settingsRows(res.ScrapeSettings))

	if info := res.Data.Information; info != nil {
		md.H2("u/" + info.Name)
		md.PlainText("")
		if info.Error != "" {
			md.PlainText(info.Error)
		} else {
			md.Table(markdown.TableSet{
				Header: []string{"Property", "Value"},
				Rows: [][]string{
					{"Link karma", strconv.Itoa(info.LinkKarma)},
					{"Comment karma", strconv.Itoa(info.CommentKarma)},
					{"Created", info.CreatedUTC},
					{"Gold", strconv.FormatBool(info.IsGold)},
					{"Moderator", strconv.FormatBool(info.IsMod)},
				},
			})
		}
		md.PlainText("")
	}

	md.H2(fmt.Sprintf("Submissions (%d)", len(res.Data.Submissions)))
	md.PlainText("")
	for i := range res.Data.Submissions {
		writeSubmissionMarkdown(md, &res.Data.Submissions[i])
	}

	md.H2(fmt.Sprintf("Comments (%d)", len(res.Data.Comments)))
	md.PlainText("")
	for i := range res.Data.Comments {
		c := &res.Data.Comments[i]
		md.H3(fmt.Sprintf("Comment by u/%s (%d points)", c.Author, c.Score))
		md.PlainText("")
		md.Blockquote(c.Body)
		md.PlainText("")
	}
}

func writeCommentsMarkdown(md *markdown.Markdown, r *report) {
	res := r.comments
	md.H1("Comment Thread Results")
	md.PlainText("")
	md.PlainTextf("Scraped at %s. %d comments.", res.ScrapedAt, res.Data.TotalComments)
	md.PlainText("")

	writeSettingsTable(md, settingsRows(res.ScrapeSettings))

	md.H2("Submission")
	md.PlainText("")
	writeSubmissionMarkdown(md, &res.Data.Submission)

	md.H2("Comments")
	md.PlainText("")
	var tree strings.Builder
	writeCommentTree(&tree, res.Data.Comments, 0)
	md.PlainText(tree.String())
}

// writeCommentTree renders the comment forest as nested bullets. The builder
// API only does flat lists, so nesting is indented by hand.
func writeCommentTree(b *strings.Builder, comments []reddit.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range comments {
		c := &comments[i]
		body := strings.ReplaceAll(c.Body, "\n", " ")
		fmt.Fprintf(b, "%s- **u/%s** (%d points): %s\n", indent, c.Author, c.Score, body)
		writeCommentTree(b, c.Replies, depth+1)
	}
}
