package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"urs/internal/scrape"
	"urs/pkg/domain"
	"urs/pkg/reddit"

	"github.com/go-pdf/fpdf"
)

type pdfWriter struct {
	pdf *fpdf.Fpdf
	// tr maps UTF-8 into the code page of the built-in fonts; characters
	// outside it degrade rather than break the document.
	tr func(string) string
}

// renderPDF builds the PDF report for a decoded result. It carries the same
// content as the Markdown export.
func renderPDF(r *report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &pdfWriter{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}

	switch r.jobType {
	case domain.JobTypeSubreddit:
		w.writeSubreddit(r.subreddit)
	case domain.JobTypeRedditor:
		w.writeRedditor(r.redditor)
	case domain.JobTypeComments:
		w.writeComments(r.comments)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (w *pdfWriter) title(text string) {
	w.pdf.SetFont("Helvetica", "B", 16)
	w.pdf.MultiCell(0, 8, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}

func (w *pdfWriter) heading(text string) {
	w.pdf.SetFont("Helvetica", "B", 13)
	w.pdf.MultiCell(0, 7, w.tr(text), "", "L", false)
	w.pdf.Ln(1)
}

func (w *pdfWriter) subheading(text string) {
	w.pdf.SetFont("Helvetica", "B", 11)
	w.pdf.MultiCell(0, 6, w.tr(text), "", "L", false)
}

func (w *pdfWriter) line(text string) {
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
}

func (w *pdfWriter) body(text string) {
	w.pdf.SetFont("Helvetica", "I", 10)
	w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
	w.pdf.Ln(1)
}

func (w *pdfWriter) settings(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	w.heading("Scrape Settings")
	for _, row := range rows {
		w.line(fmt.Sprintf("%s: %s", row[0], row[1]))
	}
	w.pdf.Ln(3)
}

func (w *pdfWriter) submission(s *reddit.Submission) {
	w.subheading(s.Title)
	w.line(fmt.Sprintf("u/%s in r/%s | score %d | %d comments | %s",
		s.Author, s.Subreddit, s.Score, s.NumComments, s.CreatedUTC))
	if s.Selftext != "" {
		w.body(s.Selftext)
	}
	w.pdf.Ln(2)
}

func (w *pdfWriter) writeSubreddit(res *scrape.SubredditResult) {
	w.title("Subreddit Scrape Results")
	w.line(fmt.Sprintf("Scraped at %s. %d submissions.", res.ScrapedAt, res.TotalResults))
	w.pdf.Ln(3)
	w.settings(settingsRows(res.ScrapeSettings))

	w.heading("Submissions")
	for i := range res.Data {
		w.submission(&res.Data[i])
	}
}

func (w *pdfWriter) writeRedditor(res *scrape.RedditorResult) {
	w.title("Redditor Scrape Results")
	w.line(fmt.Sprintf("Scraped at %s.", res.ScrapedAt))
	w.pdf.Ln(3)
	w.settings(settingsRows(res.ScrapeSettings))

	if info := res.Data.Information; info != nil {
		w.heading("u/" + info.Name)
		if info.Error != "" {
			w.line(info.Error)
		} else {
			w.line("Link karma: " + strconv.Itoa(info.LinkKarma))
			w.line("Comment karma: " + strconv.Itoa(info.CommentKarma))
			w.line("Created: " + info.CreatedUTC)
		}
		w.pdf.Ln(3)
	}

	w.heading(fmt.Sprintf("Submissions (%d)", len(res.Data.Submissions)))
	for i := range res.Data.Submissions {
		w.submission(&res.Data.Submissions[i])
	}

	w.heading(fmt.Sprintf("Comments (%d)", len(res.Data.Comments)))
	for i := range res.Data.Comments {
		c := &res.Data.Comments[i]
		w.subheading(fmt.Sprintf("u/%s (%d points)", c.Author, c.Score))
		w.body(c.Body)
	}
}

func (w *pdfWriter) writeComments(res *scrape.CommentsResult) {
	w.title("Comment Thread Results")
	w.line(fmt.Sprintf("Scraped at %s. %d comments.", res.ScrapedAt, res.Data.TotalComments))
	w.pdf.Ln(3)
	w.settings(settingsRows(res.ScrapeSettings))

	w.heading("Submission")
	w.submission(&res.Data.Submission)

	w.heading("Comments")
	w.commentTree(res.Data.Comments, 0)
}

func (w *pdfWriter) commentTree(comments []reddit.Comment, depth int) {
	indent := strings.Repeat("    ", depth)
	for i := range comments {
		c := &comments[i]
		w.line(fmt.Sprintf("%su/%s (%d points): %s", indent, c.Author, c.Score,
			strings.ReplaceAll(c.Body, "\n", " ")))
		w.commentTree(c.Replies, depth+1)
	}
}
