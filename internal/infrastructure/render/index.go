package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"time"
)

// IndexEntry is one lecture listed on the site index page.
type IndexEntry struct {
	Number   string
	Speaker  string
	Topic    string
	Date     string
	Folder   string
	HTMLFile string
}

// DisplayTitle renders the list line. Folders without the NN-speaker-topic
// naming show their folder name as-is.
func (e IndexEntry) DisplayTitle() string {
	if e.Number == "" {
		return e.Topic
	}
	return fmt.Sprintf("%s. %s - %s", e.Number, e.Topic, e.Speaker)
}

type indexPage struct {
	Title     string
	Lectures  []IndexEntry
	UpdatedAt string
}

// BuildIndex renders the site index page listing lectures newest first.
func BuildIndex(title string, entries []IndexEntry, now time.Time) ([]byte, error) {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryNumber(sorted[i]) > entryNumber(sorted[j])
	})

	page := indexPage{
		Title:     title,
		Lectures:  sorted,
		UpdatedAt: now.Format("2006.01.02 15:04"),
	}
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render index page: %w", err)
	}
	return buf.Bytes(), nil
}

func entryNumber(e IndexEntry) int {
	n, err := strconv.Atoi(e.Number)
	if err != nil {
		return 0
	}
	return n
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; background: #f5f6f8; color: #222; }
        .container { max-width: 820px; margin: 0 auto; padding: 32px 20px; }
        header { background: #1a3a6b; color: #fff; padding: 32px; border-radius: 8px; margin-bottom: 24px; text-align: center; }
        header h1 { font-size: 1.5em; }
        .lecture-list { background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); overflow: hidden; }
        .lecture-item { display: block; padding: 18px 24px; border-bottom: 1px solid #eee; text-decoration: none; color: inherit; }
        .lecture-item:last-child { border-bottom: none; }
        .lecture-item:hover { background: #f0f4fa; }
        .lecture-info { display: flex; justify-content: space-between; align-items: center; gap: 12px; }
        .lecture-title { font-weight: bold; color: #1a3a6b; }
        .lecture-meta { color: #888; font-size: 0.9em; white-space: nowrap; }
        .empty-state { padding: 48px; text-align: center; color: #999; }
        footer { text-align: center; color: #888; font-size: 0.85em; padding: 24px 0; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Title}}</h1>
        </header>
        <div class="lecture-list">
{{if .Lectures}}{{range .Lectures}}            <a href="{{.Folder}}/{{.HTMLFile}}" class="lecture-item">
                <div class="lecture-info">
                    <span class="lecture-title">{{.DisplayTitle}}</span>
                    <span class="lecture-meta">{{.Date}}</span>
                </div>
            </a>
{{end}}{{else}}            <div class="empty-state">
                <p>아직 등록된 강의 노트가 없습니다.</p>
            </div>
{{end}}        </div>
        <footer>마지막 업데이트: {{.UpdatedAt}}</footer>
    </div>
</body>
</html>
`))
