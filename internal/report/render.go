package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:sans-serif;margin:2rem;color:#222}
h1{color:#6c3fc4}
table{border-collapse:collapse;margin-bottom:2rem}
th,td{padding:.3rem .8rem;text-align:left;border-bottom:1px solid #ddd}
.bar{background:#eee;width:10rem;height:.8rem;border-radius:.4rem}
.fill{background:#4caf50;height:100%;border-radius:.4rem}`

// Page is the progress page component.
func Page(data Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		p.raw("<title>").text(data.Username).raw(" - learnmaths progress</title>")
		p.raw("<style>").raw(pageStyle).raw("</style></head><body>")
		p.raw("<h1>").text(data.Username).raw("</h1>")
		p.raw("<p>").text(fmt.Sprintf("⭐ %d stars, %d points", data.Stars, data.Points)).raw("</p>")
		if err := topicTable(data.Topics).Render(ctx, w); err != nil {
			return err
		}
		if err := sessionTable(data.Sessions).Render(ctx, w); err != nil {
			return err
		}
		if !data.GeneratedAt.IsZero() {
			p.raw("<footer>Generated ").text(data.GeneratedAt.Format("2006-01-02 15:04")).raw("</footer>")
		}
		p.raw("</body></html>\n")
		return p.err
	})
}

func topicTable(rows []TopicRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<h2>Topics</h2><table><tr><th>Topic</th><th>Level</th><th>Progress</th></tr>")
		for _, row := range rows {
			p.raw("<tr><td>").text(row.Title).raw("</td><td>").text(fmt.Sprint(row.Level)).raw("</td><td>")
			p.raw(fmt.Sprintf(`<div class="bar"><div class="fill" style="width:%d%%"></div></div>`, row.Percent))
			p.raw("</td></tr>")
		}
		p.raw("</table>")
		return p.err
	})
}

func sessionTable(rows []SessionRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<h2>Recent sessions</h2>")
		if len(rows) == 0 {
			p.raw("<p>No sessions yet.</p>")
			return p.err
		}
		p.raw("<table><tr><th>Finished</th><th>Topic</th><th>Level</th><th>Correct</th><th>Points</th><th>Stars</th></tr>")
		for _, row := range rows {
			p.raw("<tr><td>").text(row.FinishedAt.Local().Format("2006-01-02 15:04"))
			p.raw("</td><td>").text(row.Title)
			p.raw("</td><td>").text(fmt.Sprint(row.Level))
			p.raw("</td><td>").text(fmt.Sprintf("%d/%d", row.Correct, row.Total))
			p.raw("</td><td>").text(fmt.Sprint(row.Points))
			p.raw("</td><td>").text(strings.Repeat("⭐", row.Stars))
			p.raw("</td></tr>")
		}
		p.raw("</table>")
		return p.err
	})
}

// printer writes markup and keeps the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) *printer {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
	return p
}

func (p *printer) text(s string) *printer {
	return p.raw(templ.EscapeString(s))
}

// RenderHTML renders the page into a string.
func RenderHTML(ctx context.Context, data Data) (string, error) {
	var builder strings.Builder
	if err := Page(data).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteFile renders the page to path, creating parent directories.
func WriteFile(ctx context.Context, path string, data Data) error {
	html, err := RenderHTML(ctx, data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
