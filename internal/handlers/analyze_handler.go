package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
	"github.com/Kanishak333/PBL--HireEdge/internal/services"
)

type AnalyzeHandler struct {
	// analyzer is nil when no model credential is configured; the handler
	// then answers every request with a server configuration error.
	analyzer    services.AnalyzerService
	maxFileSize int64
	timeout     time.Duration
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	maxFileSize int64,
	timeout time.Duration,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		timeout:     timeout,
	}
}

// HandleAnalyze handles POST /api/analyze: one multipart upload under the
// "resume" field, one full pipeline run, one response.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded",
		})
	}

	if h.analyzer == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini API Key missing",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	doc := models.UploadedDocument{
		Data:     data,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
		Size:     int64(len(data)),
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	analysis, backupKey, err := h.analyzer.Analyze(ctx, doc)
	if err != nil {
		log.Printf("❌ Analysis failed for %q: %v\n", doc.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := models.AnalyzeResponse{
		Success:  true,
		Analysis: analysis,
	}
	if backupKey != "" {
		response.FileURL = &backupKey
	}

	return c.JSON(response)
}
