package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docrelay/docstruct/internal/classify"
	"github.com/docrelay/docstruct/internal/docstore"
	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/docrelay/docstruct/internal/listpatch"
	"github.com/docrelay/docstruct/internal/reader"
	"github.com/docrelay/docstruct/internal/structure"
)

// Worker processes a single document job: read, classify, patch the
// numbering, assemble the tree, store.
type Worker struct {
	store             *docstore.Client
	classifier        classify.Classifier
	log               *slog.Logger
	fallbackPdftotext bool
}

func NewWorker(store *docstore.Client, classifier classify.Classifier, log *slog.Logger, fallbackPdftotext bool) *Worker {
	return &Worker{
		store:             store,
		classifier:        classifier,
		log:               log,
		fallbackPdftotext: fallbackPdftotext,
	}
}

// Process runs the full structuring pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Read
	job.SetStatus(StatusReading, "reading")
	rd, err := reader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "reading")
		return
	}
	if pdfReader, ok := rd.(*reader.PDFReader); ok {
		pdfReader.FallbackPdftotext = w.fallbackPdftotext
	}

	pf, err := rd.Read(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("read failed", "error", err)
		job.AddError(fmt.Sprintf("read: %s", err))
		job.SetStatus(StatusFailed, "reading")
		return
	}
	title := pf.Title
	if job.Title != "" {
		title = job.Title
	}

	// Content hash over the read lines, for dedup.
	job.SetContentHash(ContentHashHex([]byte(flattenLines(pf.Lines))))

	exists, err := w.store.FindByHash(ctx, job.ContentHash)
	if err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if exists != "" {
		log.Info("duplicate document, skipping", "existing_doc_id", exists)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: Classify
	job.SetStatus(StatusClassifying, "classifying")
	lines := w.classifier.Classify(pf.Lines)

	// Phase 3: Patch numbering gaps
	job.SetStatus(StatusPatching, "patching")
	patched := listpatch.Patch(lines)
	synthetic := 0
	for _, l := range patched {
		if l.Synthetic {
			synthetic++
		}
	}
	job.SetLineCounts(len(patched), synthetic)
	log.Info("patched numbering", "lines", len(patched), "synthetic", synthetic)

	// Phase 4: Assemble the tree
	job.SetStatus(StatusAssembling, "assembling")
	doc := structure.Assemble(title, patched)

	// Phase 5: Store
	job.SetStatus(StatusStoring, "storing")
	rec := docstore.DocumentRecord{
		DocID:          job.DocID,
		Title:          title,
		Filename:       job.Filename,
		ContentHash:    job.ContentHash,
		LineCount:      len(patched),
		SyntheticCount: synthetic,
		CreatedAt:      job.CreatedAt.Format(time.RFC3339),
		Document:       doc,
	}

	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.store.PutDocument(ctx, rec)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "storing")
			return
		}
	}
	if lastErr != nil {
		log.Error("store failed", "error", lastErr)
		job.AddError(fmt.Sprintf("store: %s", lastErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("document structured", "title", title, "lines", len(patched))
	job.SetStatus(StatusCompleted, "done")
}

// flattenLines joins line texts for content hashing.
func flattenLines(lines []doctree.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(l.Text)
	}
	return sb.String()
}
