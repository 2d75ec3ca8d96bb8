// Package ingest provides export import orchestration.
// It coordinates parsing, normalization, image acquisition and storage
// of content records, one file and one image at a time.
package ingest

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/fwojciec/postport"
)

// DefaultFetchTimeout bounds a single image download.
const DefaultFetchTimeout = 30 * time.Second

// UpgradedImageSize is the size requested from size-segmented image URLs.
const UpgradedImageSize = 2000

var sizeSegment = regexp.MustCompile(`/max/\d+/`)

// AltFallback selects the alt text used for images without an alt attribute.
type AltFallback string

// AltFallback values.
const (
	AltFallbackSpace AltFallback = "space"
	AltFallbackTitle AltFallback = "title"
)

// Importer converts export files into content records.
type Importer struct {
	Sources postport.SourceReader
	Parser  postport.Parser
	Fetcher postport.Fetcher
	Store   postport.AssetStore
	Assets  postport.AssetService
	Records postport.ContentStore

	OwnerID      int
	AltFallback  AltFallback
	Align        string
	ViewMode     string
	FetchTimeout time.Duration
}

// Result holds the totals of an import run.
type Result struct {
	Files   int
	Records int
	Assets  int
	Bytes   int
	Skipped int
}

// ProgressEvent reports progress during an import run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	URL       string
	Title     string
	Assets    int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressImageSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// ImportDir imports every export file directly inside dir. A file that
// fails is reported and skipped; only listing failures abort the run.
func (im *Importer) ImportDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
	paths, err := im.Sources.ListSources(ctx, dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: len(paths)}
	report(progress, ProgressEvent{Type: ProgressStarted, Total: len(paths)})

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rec, err := im.ImportFile(ctx, path, progress)
		if err != nil {
			result.Skipped++
			report(progress, ProgressEvent{
				Type:      ProgressFailed,
				Completed: i + 1,
				Total:     len(paths),
				Path:      path,
				Error:     err,
			})
			continue
		}

		result.Records++
		result.Assets += len(rec.Assets)
		for _, a := range rec.Assets {
			result.Bytes += a.Size
		}
		report(progress, ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     len(paths),
			Path:      path,
			Title:     rec.Title,
			Assets:    len(rec.Assets),
		})
	}

	report(progress, ProgressEvent{
		Type:      ProgressFinished,
		Completed: len(paths),
		Total:     len(paths),
	})

	return result, nil
}

// ImportFile runs the full pipeline for one export file and stores the record.
func (im *Importer) ImportFile(ctx context.Context, path string, progress ProgressFunc) (*postport.ContentRecord, error) {
	src, err := im.Sources.ReadSource(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	doc, err := im.Parser.Parse(src.Content)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	title := doc.Title()
	if title == "" {
		title = postport.TitleFromFilename(path)
	}

	created, err := postport.CreatedFromFilename(path)
	if err != nil {
		return nil, err
	}

	body, err := doc.Body()
	if err != nil {
		return nil, err
	}

	body.Normalize()

	assets := im.processImages(ctx, body, path, title, progress)

	html, err := body.HTML()
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	rec := &postport.ContentRecord{
		OwnerID:    im.ownerID(),
		SourcePath: path,
		Title:      title,
		Summary:    doc.Summary(),
		Created:    created,
		Body:       html,
		Assets:     assets,
	}

	if err := im.Records.CreateContentRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	return rec, nil
}

// processImages acquires every image in document order. The first acquired
// image becomes the lead and leaves the body; later ones are replaced by
// placeholders. Images that cannot be acquired never affect classification.
func (im *Importer) processImages(ctx context.Context, body postport.Body, path, title string, progress ProgressFunc) []*postport.MediaAsset {
	var assets []*postport.MediaAsset

	for _, img := range body.Images() {
		src := img.Source()
		skip := func(err error) {
			report(progress, ProgressEvent{Type: ProgressImageSkipped, Path: path, URL: src, Error: err})
		}

		if !img.Attached() {
			skip(postport.Errorf(postport.EINVALID, "image removed with lead wrapper"))
			continue
		}
		if src == "" {
			skip(postport.Errorf(postport.EINVALID, "image has no source"))
			continue
		}

		src = UpgradeImageURL(src)

		asset, err := im.acquire(ctx, src, im.altFor(img, title), len(assets))
		if err != nil {
			skip(err)
			continue
		}

		if len(assets) == 0 {
			img.RemoveLead()
		} else {
			caption := img.TakeCaption()
			img.Replace(postport.Placeholder{
				AssetID:  asset.ID,
				Align:    im.Align,
				ViewMode: im.ViewMode,
				Caption:  caption,
			})
		}
		assets = append(assets, asset)
	}

	return assets
}

// acquire downloads, stores and registers a single image.
func (im *Importer) acquire(ctx context.Context, src, alt string, position int) (*postport.MediaAsset, error) {
	data, err := im.fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	handle, err := im.Store.StoreAsset(ctx, data, filenameFromURL(src))
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	asset := &postport.MediaAsset{
		ID:        handle.ID,
		OwnerID:   im.ownerID(),
		Filename:  handle.Name,
		Path:      handle.Path,
		Alt:       alt,
		SourceURL: src,
		Size:      len(data),
		Position:  position,
	}
	if err := im.Assets.CreateAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return asset, nil
}

func (im *Importer) fetch(ctx context.Context, src string) ([]byte, error) {
	timeout := im.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return im.Fetcher.Fetch(ctx, src)
}

func (im *Importer) altFor(img postport.Image, title string) string {
	if alt := img.Alt(); alt != "" {
		return alt
	}
	if im.AltFallback == AltFallbackTitle {
		return title
	}
	return " "
}

func (im *Importer) ownerID() int {
	if im.OwnerID <= 0 {
		return postport.DefaultOwnerID
	}
	return im.OwnerID
}

// UpgradeImageURL rewrites a "/max/<size>/" path segment to request the
// largest rendition. URLs without the segment are returned unchanged.
func UpgradeImageURL(src string) string {
	return sizeSegment.ReplaceAllString(src, fmt.Sprintf("/max/%d/", UpgradedImageSize))
}

// filenameFromURL derives the storage filename from the URL path.
func filenameFromURL(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return postport.AssetFilename(src)
	}
	return postport.AssetFilename(u.Path)
}

func report(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
