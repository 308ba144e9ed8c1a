package formatter

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/fumiama/go-docx"
	"github.com/xaionaro-go/creek/pkg/config"
)

const (
	docxDetailsHeading       = "Sermon Details"
	docxTranscriptionHeading = "Sermon Transcription"

	titleScale   = 2.0
	headingScale = 1.5
)

type docxWriter struct {
	*docx.Docx
	Template config.Template
}

// halfPoints renders a font size in the unit docx run properties use.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt * 2))
}

func (w *docxWriter) text(p *docx.Paragraph, text string, scale float64) *docx.Run {
	run := p.AddText(text)
	if font := w.Template.FontName; font != "" {
		run.Font(font, font, font, "")
	}
	if w.Template.FontSize > 0 {
		run.Size(halfPoints(w.Template.FontSize * scale))
	}
	return run
}

func (w *docxWriter) heading(text string, scale float64) {
	w.text(w.AddParagraph(), text, scale).Bold()
}

func (w *docxWriter) paragraph(text string) {
	w.text(w.AddParagraph(), text, 1)
}

func saveDOCX(
	ctx context.Context,
	path string,
	doc Document,
	template config.Template,
) (_err error) {
	logger.Tracef(ctx, "saveDOCX: %#+v", template)

	w := &docxWriter{
		Docx:     docx.New().WithDefaultTheme(),
		Template: template,
	}

	w.text(w.AddParagraph().Justification("center"), doc.Title, titleScale).Bold()

	if doc.Metadata != nil {
		w.heading(docxDetailsHeading, headingScale)
		for _, line := range metadataLines(doc.Metadata) {
			if line.Sub != nil {
				w.paragraph(fmt.Sprintf("%s:", line.Key))
				for _, sub := range line.Sub {
					w.paragraph(fmt.Sprintf("  %s: %v", sub.Key, sub.Value))
				}
				continue
			}
			w.paragraph(fmt.Sprintf("%s: %v", line.Key, line.Value))
		}
		w.AddParagraph().AddPageBreaks()
	}

	w.heading(docxTranscriptionHeading, headingScale)
	for _, paragraph := range strings.Split(doc.Content, "\n\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		w.paragraph(paragraph)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && _err == nil {
			_err = fmt.Errorf("unable to close '%s': %w", path, err)
		}
	}()

	n, err := w.WriteTo(f)
	if err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	logger.Debugf(ctx, "written %d bytes to '%s'", n, path)
	return nil
}
