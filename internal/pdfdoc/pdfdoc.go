// Package pdfdoc inspects plan documents saved to disk.
package pdfdoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info summarizes a saved document.
type Info struct {
	Path  string
	Size  int64
	Pages int
}

// Inspect opens the PDF at path and reads its page count.
func Inspect(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return Info{Path: path, Size: st.Size(), Pages: r.NumPage()}, nil
}

// Text extracts the plain text of every page, pages separated by a blank
// line. Pages that cannot be decoded are skipped.
func Text(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}
