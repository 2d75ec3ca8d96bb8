package fs

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/postport"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// Ensure RecordWriter implements postport.ContentStore at compile time.
var _ postport.ContentStore = (*RecordWriter)(nil)

// RecordWriter stores content records as files with YAML frontmatter.
// Bodies are written as HTML, or as Markdown when a converter is set.
type RecordWriter struct {
	dir       string
	converter postport.Converter
}

// NewRecordWriter creates a RecordWriter writing into dir.
// A nil converter keeps bodies as HTML.
func NewRecordWriter(dir string, converter postport.Converter) *RecordWriter {
	return &RecordWriter{dir: dir, converter: converter}
}

type frontmatter struct {
	ID       string             `yaml:"id"`
	Title    string             `yaml:"title"`
	Summary  string             `yaml:"summary,omitempty"`
	Created  string             `yaml:"created"`
	Source   string             `yaml:"source"`
	Owner    int                `yaml:"owner"`
	BodyHash string             `yaml:"body_hash"`
	Imported string             `yaml:"imported"`
	Lead     string             `yaml:"lead,omitempty"`
	Assets   []frontmatterAsset `yaml:"assets,omitempty"`
}

type frontmatterAsset struct {
	ID       string `yaml:"id"`
	Filename string `yaml:"filename"`
	Alt      string `yaml:"alt"`
	Source   string `yaml:"source,omitempty"`
}

// CreateContentRecord assigns the record ID, hash and import time, links the
// assets and writes the record file.
func (w *RecordWriter) CreateContentRecord(ctx context.Context, rec *postport.ContentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	body := rec.Body
	ext := ".html"
	if w.converter != nil {
		md, err := w.converter.Convert(rec.Body)
		if err != nil {
			return fmt.Errorf("convert body: %w", err)
		}
		body = md
		ext = ".md"
	}

	rec.ID = uuid.New().String()
	rec.ImportedAt = time.Now().UTC()
	rec.BodyHash = postport.HashBody(rec.Body)
	for i, a := range rec.Assets {
		a.RecordID = rec.ID
		a.Position = i
	}

	content, err := FormatRecord(rec, body)
	if err != nil {
		return err
	}

	_, err = writeUnique(w.dir, recordName(rec.SourcePath)+ext, content)
	return err
}

// FormatRecord renders rec as a YAML frontmatter block followed by body.
func FormatRecord(rec *postport.ContentRecord, body string) ([]byte, error) {
	fm := frontmatter{
		ID:       rec.ID,
		Title:    rec.Title,
		Summary:  rec.Summary,
		Created:  rec.Created.Format(postport.CreatedLayout),
		Source:   rec.SourcePath,
		Owner:    rec.OwnerID,
		BodyHash: rec.BodyHash,
		Imported: rec.ImportedAt.Format(time.RFC3339),
	}
	if lead := rec.Lead(); lead != nil {
		fm.Lead = lead.ID
	}
	for _, a := range rec.Assets {
		fm.Assets = append(fm.Assets, frontmatterAsset{
			ID:       a.ID,
			Filename: a.Filename,
			Alt:      a.Alt,
			Source:   a.SourceURL,
		})
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// recordName derives the output file stem from the export filename.
func recordName(sourcePath string) string {
	name := postport.SanitizeFilename(postport.TitleFromFilename(sourcePath))
	if name == "" {
		return "record"
	}
	return name
}
