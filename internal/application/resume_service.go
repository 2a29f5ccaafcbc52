package application

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/resumehub/resume-ai/pkg/helpers"
	"github.com/resumehub/resume-ai/pkg/pdfext"
)

// ResumeService extracts text from uploaded PDF resumes. When a GCS
// bucket or Elasticsearch index is configured, the original file is
// archived and the extracted text indexed best-effort; neither failure
// affects the response to the client.
type ResumeService struct {
	GCS     *storage.Client
	Bucket  string
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func NewResumeService(gcs *storage.Client, bucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ResumeService {
	return &ResumeService{GCS: gcs, Bucket: bucket, ES: es, ESIndex: esIndex, Logger: logger}
}

// Parse extracts the text of a PDF resume. Returns pdfext.ErrExtractFailed
// or pdfext.ErrNoText for the two distinguishable failure modes.
func (s *ResumeService) Parse(ctx context.Context, filename string, data []byte) (string, error) {
	text, err := pdfext.ExtractText(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.archive(ctx, id, data)
	s.index(ctx, id, filename, text)
	return text, nil
}

func (s *ResumeService) archive(ctx context.Context, id string, data []byte) {
	if s.GCS == nil || s.Bucket == "" {
		return
	}
	objectPath := "resumes/" + id + ".pdf"
	if _, err := helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, "application/pdf", bytes.NewReader(data)); err != nil {
		s.Logger.WithError(err).WithField("object", objectPath).Warn("resume archive failed")
	}
}

func (s *ResumeService) index(ctx context.Context, id, filename, text string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          id,
		"filename":    filename,
		"text":        text,
		"uploaded_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: id, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("resume_id", id).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("resume_id", id).Warn("es index response error")
	}
}

// Search runs a simple multi_match query over indexed resume text.
func (s *ResumeService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"text", "filename^2"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
