package formatter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/datacounter"
)

func saveTXT(ctx context.Context, path string, doc Document) (_err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && _err == nil {
			_err = fmt.Errorf("unable to close '%s': %w", path, err)
		}
	}()

	wc := datacounter.NewWriterCounter(f)
	w := bufio.NewWriter(wc)
	writeTXT(w, doc)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	logger.Debugf(ctx, "written %d bytes to '%s'", wc.Count(), path)
	return nil
}

func writeTXT(w io.Writer, doc Document) {
	fmt.Fprintf(w, "%s\n", doc.Title)
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(doc.Title)))

	if doc.Metadata != nil {
		fmt.Fprintf(w, "METADATA\n")
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len("METADATA")))
		for _, line := range metadataLines(doc.Metadata) {
			if line.Sub != nil {
				fmt.Fprintf(w, "%s:\n", line.Key)
				for _, sub := range line.Sub {
					fmt.Fprintf(w, "  %s: %v\n", sub.Key, sub.Value)
				}
				continue
			}
			fmt.Fprintf(w, "%s: %v\n", line.Key, line.Value)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "TRANSCRIPTION\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len("TRANSCRIPTION")))
	fmt.Fprintf(w, "%s\n", doc.Content)
}
