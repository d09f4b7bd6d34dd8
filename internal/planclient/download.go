package planclient

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/event"
	"github.com/Iron-Ham/studyplan/internal/pdfdoc"
)

// DefaultDocumentName is used when a link has no usable base name.
const DefaultDocumentName = "study_plan.pdf"

// Downloader fetches a document link. *api.Client satisfies it.
type Downloader interface {
	Download(ctx context.Context, link string, w io.Writer) (int64, error)
}

// DocumentLink returns the current plan's document link.
func (c *Controller) DocumentLink() (string, error) {
	if !c.current.HasDocument() {
		return "", errors.ErrNoDocument
	}
	return c.current.PDFURL, nil
}

// FinishDownload posts the outcome of a document download.
func (c *Controller) FinishDownload(info pdfdoc.Info, err error) {
	if err != nil {
		c.logger.Warn("download failed", "error", err.Error())
		c.PostBot(failureText(err, MsgDownloadFailed))
		return
	}
	c.PostBot(SavedText(info))
	c.bus.Publish(event.NewDocumentSavedEvent(info.Path, info.Size, info.Pages))
}

// SavedText describes a saved document.
func SavedText(info pdfdoc.Info) string {
	size := humanize.Bytes(uint64(info.Size))
	switch info.Pages {
	case 0:
		return fmt.Sprintf("Study plan saved to %s (%s).", info.Path, size)
	case 1:
		return fmt.Sprintf("Study plan saved to %s (1 page, %s).", info.Path, size)
	default:
		return fmt.Sprintf("Study plan saved to %s (%d pages, %s).", info.Path, info.Pages, size)
	}
}

// DocumentName returns the file name a link is saved under.
func DocumentName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return DefaultDocumentName
	}
	name := path.Base(u.Path)
	if name == "." || name == ".." || name == "/" || name == "" {
		return DefaultDocumentName
	}
	return name
}

// SaveDocument downloads link into dir under its base name and inspects
// the result. The file only appears under its final name once complete.
// A document that downloads but cannot be parsed is kept and reported with
// zero pages.
func SaveDocument(ctx context.Context, d Downloader, link, dir string) (pdfdoc.Info, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return pdfdoc.Info{}, fmt.Errorf("create download dir: %w", err)
	}
	target := filepath.Join(dir, DocumentName(link))

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return pdfdoc.Info{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := d.Download(ctx, link, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("write %s: %w", target, closeErr)
	}
	if err != nil {
		return pdfdoc.Info{}, err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return pdfdoc.Info{}, fmt.Errorf("save %s: %w", target, err)
	}

	info, err := pdfdoc.Inspect(target)
	if err != nil {
		return pdfdoc.Info{Path: target, Size: n}, nil
	}
	return info, nil
}
