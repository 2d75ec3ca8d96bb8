package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/postport"
	main "github.com/fwojciec/postport/cmd/postport"
	"github.com/fwojciec/postport/goquery"
	"github.com/fwojciec/postport/ingest"
	"github.com/fwojciec/postport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportHTML = `<h1 class="p-name">Post</h1><section data-field="body"><p><img alt="a" src="https://img.example.com/a.png"/></p><p>text</p></section>`

func newTestImporter(files map[string]string, records *[]*postport.ContentRecord) *ingest.Importer {
	return &ingest.Importer{
		Sources: &mock.SourceReader{
			ListSourcesFn: func(_ context.Context, dir string) ([]string, error) {
				var paths []string
				for name := range files {
					paths = append(paths, name)
				}
				return paths, nil
			},
			ReadSourceFn: func(_ context.Context, path string) (*postport.SourceFile, error) {
				return &postport.SourceFile{Path: path, Content: []byte(files[path])}, nil
			},
		},
		Parser: goquery.NewParser(),
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) ([]byte, error) {
				return nil, errors.New("HTTP 404")
			},
		},
		Store:  &mock.AssetStore{},
		Assets: &mock.AssetService{},
		Records: &mock.ContentStore{
			CreateContentRecordFn: func(_ context.Context, rec *postport.ContentRecord) error {
				rec.ID = "rec-1"
				*records = append(*records, rec)
				return nil
			},
		},
	}
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("applies flags and prints summary", func(t *testing.T) {
		t.Parallel()

		var records []*postport.ContentRecord
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Importer: newTestImporter(map[string]string{"2020-01-02_post.html": exportHTML}, &records),
		}

		cmd := &main.ImportCmd{Dir: "exports", Owner: 5, AltFallback: "title", Align: "left", ViewMode: "full"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 5, records[0].OwnerID)
		assert.Equal(t, ingest.AltFallbackTitle, deps.Importer.AltFallback)
		assert.Contains(t, stdout.String(), "Found 1 export files")
		assert.Contains(t, stdout.String(), "Post (0 assets)")
		assert.Contains(t, stdout.String(), "Imported 1 records with 0 assets, 0 B (1 files, 0 skipped)")
		assert.Contains(t, stderr.String(), "image https://img.example.com/a.png")
		assert.Contains(t, stderr.String(), "404")
	})

	t.Run("reports failed files", func(t *testing.T) {
		t.Parallel()

		var records []*postport.ContentRecord
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Importer: newTestImporter(map[string]string{"undated.html": exportHTML}, &records),
		}

		err := (&main.ImportCmd{Dir: "exports"}).Run(deps)

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Contains(t, stderr.String(), "skip undated.html")
		assert.Contains(t, stdout.String(), "(1 files, 1 skipped)")
	})

	t.Run("returns error when directory is missing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Importer: &ingest.Importer{
				Sources: &mock.SourceReader{
					ListSourcesFn: func(_ context.Context, dir string) ([]string, error) {
						return nil, postport.Errorf(postport.ENOTFOUND, "directory %q not found", dir)
					},
				},
			},
		}

		err := (&main.ImportCmd{Dir: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, postport.ENOTFOUND, postport.ErrorCode(err))
		assert.Contains(t, stderr.String(), `error: directory "missing" not found`)
		assert.Empty(t, stdout.String())
	})
}
