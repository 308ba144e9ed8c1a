// Package formatter turns a transcript into documents (plain text, docx).
package formatter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/lestrrat-go/strftime"
	"github.com/xaionaro-go/creek/pkg/config"
)

const (
	DefaultTitlePrefix = "Sermon"

	metadataKeyDefaultDate = "default_date"
	dateLayout             = "2006-01-02"
)

type Document struct {
	Title    string
	Content  string
	Metadata map[string]any
}

type Formatter struct {
	Formats          []config.OutputFormat
	NamingConvention string
	TextCleanup      config.TextCleanupConfig
	DefaultMetadata  map[string]any
	TitlePrefix      string

	now func() time.Time
}

func New(cfg *config.Config) *Formatter {
	return &Formatter{
		Formats:          cfg.Output.Formats,
		NamingConvention: cfg.Output.NamingConvention,
		TextCleanup:      cfg.PostProcessing.TextCleanup,
		DefaultMetadata:  cfg.Metadata,
		TitlePrefix:      DefaultTitlePrefix,
		now:              time.Now,
	}
}

// Format writes the transcript in every configured format and returns the
// paths of the produced files by format.
func (f *Formatter) Format(
	ctx context.Context,
	transcript string,
	metadata map[string]any,
) (_ map[config.OutputFormatType]string, _err error) {
	logger.Debugf(ctx, "Format")
	defer func() { logger.Debugf(ctx, "/Format: %v", _err) }()

	now := f.now()
	baseName, err := strftime.Format(f.NamingConvention, now)
	if err != nil {
		return nil, fmt.Errorf("unable to render the naming convention '%s': %w", f.NamingConvention, err)
	}

	doc := f.Document(transcript, metadata, now)
	result := map[config.OutputFormatType]string{}
	for _, format := range f.Formats {
		path, err := f.save(ctx, format, baseName, doc)
		if err != nil {
			return result, fmt.Errorf("unable to save the %s document: %w", format.Type, err)
		}
		logger.Infof(ctx, "saved the %s document to '%s'", format.Type, path)
		result[format.Type] = path
	}
	return result, nil
}

// Document merges the metadata with the defaults (the given values win) and
// applies the configured text cleanup.
func (f *Formatter) Document(
	transcript string,
	metadata map[string]any,
	now time.Time,
) Document {
	merged := make(map[string]any, len(f.DefaultMetadata)+len(metadata))
	for k, v := range f.DefaultMetadata {
		merged[k] = v
	}
	for k, v := range metadata {
		merged[k] = v
	}

	if f.TextCleanup.CapitalizeSentences {
		transcript = CapitalizeSentences(transcript)
	}
	if f.TextCleanup.FixPunctuation {
		transcript = FixPunctuation(transcript)
	}

	date, ok := merged[metadataKeyDefaultDate]
	if !ok {
		date = now.Format(dateLayout)
	}
	return Document{
		Title:    fmt.Sprintf("%s - %v", f.TitlePrefix, date),
		Content:  transcript,
		Metadata: merged,
	}
}

func (f *Formatter) save(
	ctx context.Context,
	format config.OutputFormat,
	baseName string,
	doc Document,
) (string, error) {
	if err := os.MkdirAll(format.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("unable to create directory '%s': %w", format.SaveDirectory, err)
	}
	path := filepath.Join(format.SaveDirectory, baseName+"."+string(format.Type))

	switch format.Type {
	case config.OutputFormatTypeTXT:
		return path, saveTXT(ctx, path, doc)
	case config.OutputFormatTypeDOCX:
		return path, saveDOCX(ctx, path, doc, format.Template)
	default:
		return "", fmt.Errorf("unsupported format: '%s'", format.Type)
	}
}

type metadataLine struct {
	Key   string
	Value any
	Sub   []metadataLine
}

// metadataLines flattens the metadata one level deep, with the keys sorted.
func metadataLines(metadata map[string]any) []metadataLine {
	keys := sortedKeys(metadata)
	lines := make([]metadataLine, 0, len(keys))
	for _, k := range keys {
		line := metadataLine{Key: k, Value: metadata[k]}
		if sub, ok := metadata[k].(map[string]any); ok {
			line.Value = nil
			for _, subKey := range sortedKeys(sub) {
				line.Sub = append(line.Sub, metadataLine{Key: subKey, Value: sub[subKey]})
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
