package routes

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"acadforms/internal/cloud"
	"acadforms/internal/database"
	"acadforms/internal/forms"
	"acadforms/internal/mailer"
	"acadforms/internal/records"
	"acadforms/internal/render"
	"acadforms/internal/render/flowdocx"
	"acadforms/internal/render/preview"
	"acadforms/internal/render/printpdf"
	"acadforms/internal/schema"
)

const (
	pdfContentType  = "application/pdf"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type DocumentRoutes struct {
	server ServerInterface
}

func NewDocumentRoutes(server ServerInterface) *DocumentRoutes {
	return &DocumentRoutes{server: server}
}

func (dr *DocumentRoutes) RegisterRoutes(r *gin.Engine) {
	middleware := NewMiddleware(dr.server)

	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.POST("", dr.createDocumentHandler)
		documents.GET("", dr.listDocumentsHandler)
		documents.GET("/:recordID", dr.getDocumentHandler)
		documents.GET("/:recordID/export/pdf", dr.exportPDFHandler)
		documents.GET("/:recordID/export/docx", dr.exportDOCXHandler)
		documents.GET("/:recordID/preview", dr.previewHandler)
		documents.POST("/:recordID/send", dr.sendDocumentHandler)
		documents.POST("/:recordID/archive", dr.archiveDocumentHandler)
	}
}

type CreateDocumentRequest struct {
	TemplateID string       `json:"templateId" binding:"required"`
	Data       forms.Values `json:"data"`
}

func (dr *DocumentRoutes) createDocumentHandler(c *gin.Context) {
	user := c.MustGet("user").(*database.User)

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tpl, err := dr.server.GetCatalog().Get(req.TemplateID)
	if err != nil {
		if errors.Is(err, schema.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}

	rec, err := records.Create(tpl, req.Data, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build record"})
		return
	}

	if err := dr.server.GetDB().SaveRecord(rec, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (dr *DocumentRoutes) listDocumentsHandler(c *gin.Context) {
	user := c.MustGet("user").(*database.User)

	list, err := dr.server.GetDB().ListRecords(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}
	if list == nil {
		list = []records.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"documents": list})
}

func (dr *DocumentRoutes) getDocumentHandler(c *gin.Context) {
	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (dr *DocumentRoutes) exportPDFHandler(c *gin.Context) {
	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}

	content, name, err := dr.renderArtifact(rec, "pdf")
	if err != nil {
		dr.exportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, pdfContentType, content)
}

func (dr *DocumentRoutes) exportDOCXHandler(c *gin.Context) {
	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}

	content, name, err := dr.renderArtifact(rec, "docx")
	if err != nil {
		dr.exportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, docxContentType, content)
}

func (dr *DocumentRoutes) previewHandler(c *gin.Context) {
	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}

	tpl, err := dr.server.GetCatalog().Get(rec.TemplateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	createdAt, err := recordDate(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Record has an invalid creation date"})
		return
	}

	html, err := preview.Render(tpl, rec.Data, createdAt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to render preview"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

type SendDocumentRequest struct {
	To      []string `json:"to" binding:"required"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// sendDocumentHandler emails the record with both artifacts attached. A
// single delivery attempt is made; failures surface to the caller.
func (dr *DocumentRoutes) sendDocumentHandler(c *gin.Context) {
	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}

	var req SendDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pdfContent, pdfName, err := dr.renderArtifact(rec, "pdf")
	if err != nil {
		dr.exportError(c, err)
		return
	}
	docxContent, docxName, err := dr.renderArtifact(rec, "docx")
	if err != nil {
		dr.exportError(c, err)
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("%s - %s", rec.TemplateName, rec.Applicant)
	}
	body := req.Body
	if body == "" {
		body = fmt.Sprintf("<p>Please find attached the document %q submitted by %s.</p>",
			rec.TemplateName, rec.Applicant)
	}

	msg := mailer.Message{
		To:       req.To,
		Subject:  subject,
		HTMLBody: body,
		Attachments: []mailer.Attachment{
			{Name: pdfName, ContentType: pdfContentType, Content: pdfContent},
			{Name: docxName, ContentType: docxContentType, Content: docxContent},
		},
	}

	if err := dr.server.GetSender().Send(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Failed to send email: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document sent", "recipients": len(req.To)})
}

// archiveDocumentHandler files both artifacts on the drive under the
// template's archive folder and moves the record to Pending Review.
func (dr *DocumentRoutes) archiveDocumentHandler(c *gin.Context) {
	user := c.MustGet("user").(*database.User)

	rec, ok := dr.loadRecord(c)
	if !ok {
		return
	}

	pdfContent, pdfName, err := dr.renderArtifact(rec, "pdf")
	if err != nil {
		dr.exportError(c, err)
		return
	}
	docxContent, docxName, err := dr.renderArtifact(rec, "docx")
	if err != nil {
		dr.exportError(c, err)
		return
	}

	folder := schema.FolderFor(rec.TemplateID)
	drive := dr.server.GetDrive()
	db := dr.server.GetDB()

	pdfItemID, err := drive.Upload(c.Request.Context(), pdfName, pdfContent, cloud.PDFFolder+"/"+folder)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Failed to archive PDF: %v", err)})
		return
	}
	docxItemID, err := drive.Upload(c.Request.Context(), docxName, docxContent, cloud.GeneratedFolder+"/"+folder)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Failed to archive document: %v", err)})
		return
	}

	// The audit trail is best-effort: a failed entry must not undo an
	// archive that already landed on the drive.
	if err := db.RecordExport(rec.ID, user.ID, "pdf", pdfItemID); err != nil {
		log.Printf("failed to log pdf export for record %s: %v", rec.ID, err)
	}
	if err := db.RecordExport(rec.ID, user.ID, "docx", docxItemID); err != nil {
		log.Printf("failed to log docx export for record %s: %v", rec.ID, err)
	}

	if err := db.UpdateRecordStatus(rec.ID, user.ID, records.StatusPendingReview); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document archived",
		"pdf_id":  pdfItemID,
		"docx_id": docxItemID,
		"folder":  folder,
		"status":  records.StatusPendingReview,
	})
}

// recordDate parses the record's snapshot date. Exports and previews are
// functions of this date; a malformed one is surfaced, never papered over
// with the current time.
func recordDate(rec *records.Record) (time.Time, error) {
	at, err := time.Parse("2006-01-02", rec.CreatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("record %s has a malformed creation date %q: %w", rec.ID, rec.CreatedAt, err)
	}
	return at, nil
}

// loadRecord fetches the record named in the URL for the session user.
func (dr *DocumentRoutes) loadRecord(c *gin.Context) (*records.Record, bool) {
	user := c.MustGet("user").(*database.User)

	rec, err := dr.server.GetDB().GetRecord(c.Param("recordID"), user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return nil, false
	}
	return rec, true
}

// renderArtifact produces one export of the record. Renders are pure
// functions of the snapshot, so re-exporting always yields the same bytes.
func (dr *DocumentRoutes) renderArtifact(rec *records.Record, format string) ([]byte, string, error) {
	tpl, err := dr.server.GetCatalog().Get(rec.TemplateID)
	if err != nil {
		return nil, "", err
	}

	createdAt, err := recordDate(rec)
	if err != nil {
		return nil, "", err
	}

	var content []byte
	switch format {
	case "pdf":
		content, err = printpdf.Render(tpl, rec.Data, createdAt)
	case "docx":
		content, err = flowdocx.Render(tpl, rec.Data, createdAt)
	default:
		return nil, "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return nil, "", err
	}

	return content, render.FileName(rec.TemplateName, rec.ID, format), nil
}

// exportError maps render failures to the right status: a vanished template
// is 404, anything else is a retryable upstream failure.
func (dr *DocumentRoutes) exportError(c *gin.Context, err error) {
	if errors.Is(err, schema.ErrTemplateNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Export failed: %v", err)})
}
