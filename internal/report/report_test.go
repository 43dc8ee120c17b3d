package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SayaAndy/saya-today-article-schema/internal/article"
	"github.com/SayaAndy/saya-today-article-schema/internal/pipeline"
	"github.com/SayaAndy/saya-today-article-schema/internal/posts"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, &pipeline.Summary{
		Scanned:     3,
		Processed:   2,
		Failed:      1,
		ArchiveName: "archive.json",
		Years: []posts.YearGroup[article.Entry]{
			{Year: "2025", Posts: make([]article.Entry, 2)},
		},
	})

	out := buf.String()
	for _, want := range []string{"Article schema run", "Scanned:", "2025 (2)", "Wrote archive.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, &pipeline.Summary{DryRun: true, ArchiveName: "archive.json"})

	out := buf.String()
	if !strings.Contains(out, "(dry run)") {
		t.Errorf("expected dry run title:\n%s", out)
	}
	if strings.Contains(out, "Wrote") {
		t.Errorf("dry run should not report writes:\n%s", out)
	}
}
