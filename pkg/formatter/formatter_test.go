package formatter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/creek/pkg/config"
)

func newTestFormatter(t *testing.T, formats ...config.OutputFormatType) *Formatter {
	cfg := config.Default()
	cfg.Output.Formats = nil
	for _, formatType := range formats {
		cfg.Output.Formats = append(cfg.Output.Formats, config.OutputFormat{
			Type:          formatType,
			SaveDirectory: filepath.Join(t.TempDir(), string(formatType)),
			Template: config.Template{
				FontName: config.DefaultFontName,
				FontSize: config.DefaultFontSize,
			},
		})
	}
	cfg.Output.NamingConvention = "%Y%m%d_%H%M%S_sermon"
	cfg.Metadata = map[string]any{
		"church":  "Creek Church",
		"speaker": "Default Speaker",
	}
	f := New(cfg)
	f.now = func() time.Time {
		return time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func TestDocumentMetadataMerge(t *testing.T) {
	f := newTestFormatter(t)

	doc := f.Document("text", map[string]any{"speaker": "Guest"}, f.now())
	assert.Equal(t, "Sermon - 2024-05-12", doc.Title)
	assert.Equal(t, "Guest", doc.Metadata["speaker"])
	assert.Equal(t, "Creek Church", doc.Metadata["church"])
	assert.Equal(t, "Default Speaker", f.DefaultMetadata["speaker"])

	doc = f.Document("text", map[string]any{"default_date": "Easter"}, f.now())
	assert.Equal(t, "Sermon - Easter", doc.Title)
}

func TestDocumentTextCleanup(t *testing.T) {
	f := newTestFormatter(t)

	f.TextCleanup = config.TextCleanupConfig{CapitalizeSentences: true, FixPunctuation: true}
	doc := f.Document("hello.world.  again", nil, f.now())
	assert.Equal(t, "Hello. world. again", doc.Content)

	f.TextCleanup = config.TextCleanupConfig{}
	doc = f.Document("hello.world", nil, f.now())
	assert.Equal(t, "hello.world", doc.Content)
}

func TestWriteTXT(t *testing.T) {
	var buf bytes.Buffer
	writeTXT(&buf, Document{
		Title:   "Sermon - 2024-05-12",
		Content: "Some words.",
		Metadata: map[string]any{
			"speaker": "Guest",
			"church":  "Creek Church",
			"service": map[string]any{"time": "10:30", "kind": "morning"},
		},
	})
	assert.Equal(t, "Sermon - 2024-05-12\n"+
		"===================\n"+
		"\n"+
		"METADATA\n"+
		"--------\n"+
		"church: Creek Church\n"+
		"service:\n"+
		"  kind: morning\n"+
		"  time: 10:30\n"+
		"speaker: Guest\n"+
		"\n"+
		"TRANSCRIPTION\n"+
		"-------------\n"+
		"Some words.\n", buf.String())
}

func TestFormatTXT(t *testing.T) {
	ctx := context.Background()
	f := newTestFormatter(t, config.OutputFormatTypeTXT)

	paths, err := f.Format(ctx, "a sermon.", nil)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	path := paths[config.OutputFormatTypeTXT]
	assert.Equal(t, "20240512_103000_sermon.txt", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Sermon - 2024-05-12\n")
	assert.Contains(t, string(content), "church: Creek Church\n")
	assert.Contains(t, string(content), "TRANSCRIPTION\n")
}

func TestFormatDOCX(t *testing.T) {
	ctx := context.Background()
	f := newTestFormatter(t, config.OutputFormatTypeDOCX)

	paths, err := f.Format(ctx, "first paragraph\n\nsecond paragraph", nil)
	require.NoError(t, err)

	path := paths[config.OutputFormatTypeDOCX]
	assert.Equal(t, "20240512_103000_sermon.docx", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := docx.Parse(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	var paragraphs []string
	for _, item := range parsed.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	assert.Contains(t, paragraphs, "Sermon - 2024-05-12")
	assert.Contains(t, paragraphs, "Sermon Details")
	assert.Contains(t, paragraphs, "church: Creek Church")
	assert.Contains(t, paragraphs, "Sermon Transcription")
	assert.Contains(t, paragraphs, "First paragraph", "the cleanup is enabled by default")
	assert.Contains(t, paragraphs, "second paragraph")
}

func TestFormatUnsupported(t *testing.T) {
	ctx := context.Background()
	f := newTestFormatter(t, config.OutputFormatType("pdf"))

	_, err := f.Format(ctx, "text", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
