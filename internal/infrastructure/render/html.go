package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"time"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"
)

type htmlSlide struct {
	SlideNum  int
	ImageSrc  string
	KeyPoints []string
}

type htmlPage struct {
	Topic       string
	Speaker     string
	Date        string
	Slides      []htmlSlide
	QASection   []*summaries.QAItem
	Takeaways   []string
	GeneratedAt string
}

// BuildHTML renders the complete lecture note with an image lightbox.
func BuildHTML(info lectures.LectureInfo, summary *summaries.LectureSummary, images map[int]string, now time.Time) ([]byte, error) {
	page := htmlPage{
		Topic:       info.Topic,
		Speaker:     info.Speaker,
		Date:        info.FormattedDate(),
		QASection:   summary.QASection,
		Takeaways:   summary.KeyTakeaways,
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
	}
	for _, s := range summary.Summaries {
		page.Slides = append(page.Slides, htmlSlide{
			SlideNum:  s.SlideNum,
			ImageSrc:  images[s.SlideNum],
			KeyPoints: s.KeyPoints,
		})
	}
	sort.Slice(page.Slides, func(i, j int) bool { return page.Slides[i].SlideNum < page.Slides[j].SlideNum })

	var buf bytes.Buffer
	if err := noteTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render html note: %w", err)
	}
	return buf.Bytes(), nil
}

var noteTemplate = template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Topic}} - 강의노트</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; background: #f5f6f8; color: #222; line-height: 1.6; }
        .container { max-width: 1200px; margin: 0 auto; padding: 24px; }
        header { background: #1a3a6b; color: #fff; padding: 28px 32px; border-radius: 8px; margin-bottom: 24px; }
        header h1 { font-size: 1.6em; margin-bottom: 6px; }
        header .meta { opacity: 0.85; font-size: 0.95em; }
        .slide-section { display: flex; gap: 24px; background: #fff; border-radius: 8px; padding: 20px; margin-bottom: 16px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        .slide-left { flex: 0 0 45%; }
        .slide-num { font-weight: bold; color: #1a3a6b; margin-bottom: 8px; }
        .slide-image { width: 100%; border: 1px solid #ddd; border-radius: 4px; cursor: zoom-in; }
        .slide-right { flex: 1; }
        .key-points { padding-left: 20px; }
        .key-points li { margin-bottom: 8px; }
        .no-points { color: #999; font-style: italic; }
        .qa-section, .takeaways-section { background: #fff; border-radius: 8px; padding: 24px; margin-bottom: 16px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        .qa-section h2, .takeaways-section h2 { color: #1a3a6b; margin-bottom: 16px; }
        .qa-item { padding: 12px 0; border-bottom: 1px solid #eee; }
        .qa-item:last-child { border-bottom: none; }
        .qa-item .question { font-weight: bold; margin-bottom: 6px; }
        .qa-item .answer { color: #444; }
        .takeaways-section ul { padding-left: 20px; }
        .takeaways-section li { margin-bottom: 10px; }
        footer { text-align: center; color: #888; font-size: 0.85em; padding: 20px 0; }
        .lightbox-overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,0.9); z-index: 1000; align-items: center; justify-content: center; }
        .lightbox-overlay.active { display: flex; }
        .lightbox-overlay img { max-width: 92%; max-height: 88%; }
        .lightbox-close { position: absolute; top: 16px; right: 28px; color: #fff; font-size: 2.2em; cursor: pointer; }
        .lightbox-nav { position: absolute; top: 50%; color: #fff; font-size: 2.6em; cursor: pointer; user-select: none; }
        .lightbox-prev { left: 24px; }
        .lightbox-next { right: 24px; }
        .lightbox-caption { position: absolute; bottom: 16px; color: #ddd; }
        @media (max-width: 800px) { .slide-section { flex-direction: column; } .slide-left { flex: none; } }
    </style>
</head>
<body>
    <div class="lightbox-overlay" id="lightbox" onclick="closeLightbox(event)">
        <span class="lightbox-close" onclick="closeLightbox(event)">&times;</span>
        <span class="lightbox-nav lightbox-prev" onclick="navLightbox(event, -1)">&#8249;</span>
        <img id="lightbox-img" src="" alt="">
        <span class="lightbox-nav lightbox-next" onclick="navLightbox(event, 1)">&#8250;</span>
        <div class="lightbox-caption" id="lightbox-caption"></div>
    </div>
    <div class="container">
        <header>
            <h1>{{.Topic}}</h1>
            <div class="meta">강연자: {{.Speaker}} | 날짜: {{.Date}}</div>
        </header>
{{range .Slides}}        <div class="slide-section">
            <div class="slide-left">
                <div class="slide-num">슬라이드 {{.SlideNum}}</div>
{{if .ImageSrc}}                <img src="{{.ImageSrc}}" class="slide-image" alt="슬라이드 {{.SlideNum}}" loading="lazy" onclick="openLightbox(this)">
{{end}}            </div>
            <div class="slide-right">
{{if .KeyPoints}}                <ul class="key-points">
{{range .KeyPoints}}                    <li>{{.}}</li>
{{end}}                </ul>
{{else}}                <p class="no-points">(내용 없음)</p>
{{end}}            </div>
        </div>
{{end}}{{if .QASection}}        <div class="qa-section">
            <h2>💬 Q&amp;A</h2>
{{range .QASection}}            <div class="qa-item">
                <div class="question">Q: {{.Question}}</div>
                <div class="answer">A: {{.Answer}}</div>
            </div>
{{end}}        </div>
{{end}}{{if .Takeaways}}        <div class="takeaways-section">
            <h2>📌 Key Takeaways</h2>
            <ul>
{{range .Takeaways}}                <li>{{.}}</li>
{{end}}            </ul>
        </div>
{{end}}    <script>
        var slideImages = [];
        var currentIdx = 0;
        document.querySelectorAll('.slide-image').forEach(function(img) {
            slideImages.push({ src: img.getAttribute('src'), alt: img.getAttribute('alt') });
        });
        function openLightbox(img) {
            var src = img.getAttribute('src');
            currentIdx = slideImages.findIndex(function(s) { return s.src === src; });
            if (currentIdx < 0) currentIdx = 0;
            showSlide();
            document.getElementById('lightbox').classList.add('active');
            document.body.style.overflow = 'hidden';
        }
        function closeLightbox(e) {
            if (e.target.id === 'lightbox' || e.target.classList.contains('lightbox-close')) {
                document.getElementById('lightbox').classList.remove('active');
                document.body.style.overflow = '';
            }
        }
        function navLightbox(e, dir) {
            e.stopPropagation();
            currentIdx = (currentIdx + dir + slideImages.length) % slideImages.length;
            showSlide();
        }
        function showSlide() {
            var s = slideImages[currentIdx];
            document.getElementById('lightbox-img').src = s.src;
            document.getElementById('lightbox-caption').textContent = s.alt + ' (' + (currentIdx + 1) + '/' + slideImages.length + ')';
        }
        document.addEventListener('keydown', function(e) {
            var lb = document.getElementById('lightbox');
            if (!lb.classList.contains('active')) return;
            if (e.key === 'Escape') { lb.classList.remove('active'); document.body.style.overflow = ''; }
            if (e.key === 'ArrowLeft') { currentIdx = (currentIdx - 1 + slideImages.length) % slideImages.length; showSlide(); }
            if (e.key === 'ArrowRight') { currentIdx = (currentIdx + 1) % slideImages.length; showSlide(); }
        });
    </script>
        <footer>생성일시: {{.GeneratedAt}} | 자동 생성된 강의노트</footer>
    </div>
</body>
</html>
`))
