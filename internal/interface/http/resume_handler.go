package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/resumehub/resume-ai/internal/application"
	"github.com/resumehub/resume-ai/pkg/pdfext"
	"github.com/resumehub/resume-ai/pkg/response"
)

type ResumeHandler struct {
	Svc      *application.ResumeService
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewResumeHandler(svc *application.ResumeService, maxBytes int64, logger *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{Svc: svc, MaxBytes: maxBytes, Logger: logger}
}

// Parse POST /api/resume/parse, multipart field "resume".
// All request-shape checks happen before the extractor is invoked.
func (h *ResumeHandler) Parse(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil {
		response.FailLabeled(c, http.StatusBadRequest, "No PDF file uploaded", "Please select a PDF file to upload", nil)
		return
	}

	if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
		response.FailLabeled(c, http.StatusBadRequest, "Invalid file type", "Only PDF files are allowed", nil)
		return
	}

	if header.Size > h.MaxBytes {
		response.FailLabeled(c, http.StatusBadRequest, "File too large",
			"Resume must be at most "+strconv.FormatInt(h.MaxBytes, 10)+" bytes", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.unexpected(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		h.unexpected(c, err)
		return
	}
	if len(data) == 0 {
		response.FailLabeled(c, http.StatusBadRequest, "Invalid PDF file", "The uploaded PDF file is empty or corrupted", nil)
		return
	}

	text, err := h.Svc.Parse(c.Request.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, pdfext.ErrNoText):
			response.FailLabeled(c, http.StatusBadRequest, "No Text Extracted", "No text could be extracted from the PDF", nil)
		case errors.Is(err, pdfext.ErrExtractFailed):
			response.FailLabeled(c, http.StatusBadRequest, "PDF Parsing Failed", "Unable to extract text from the PDF", err.Error())
		default:
			h.unexpected(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "PDF parsed successfully",
		"text":    text,
	})
}

// Search GET /api/resume/search?q=...&size=...
func (h *ResumeHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "query parameter q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	results, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.unexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *ResumeHandler) unexpected(c *gin.Context, err error) {
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("resume request failed")
	response.FailLabeled(c, http.StatusInternalServerError, "Internal Server Error",
		"An unexpected error occurred while processing the resume", err.Error())
}
