package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-pro/internal/backup"
	"calendar-pro/pkg/response"
)

func sendFile(c *gin.Context, f backup.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

// Export godoc
// @Summary     Download a JSON backup
// @Description Every event and task, indented JSON, as an attachment.
// @Tags        Backup
// @Produce     json
// @Success     200 {file} file
// @Router      /api/v1/backup/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := h.uc.Export(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	sendFile(c, f)
}

// Import godoc
// @Summary     Restore a JSON backup
// @Description Replaces each collection present in the file. Accepts the raw JSON body or a multipart "file" field.
// @Tags        Backup
// @Accept      json,mpfd
// @Produce     json
// @Param       file formData file false "Backup file"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/backup/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processImportBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// ExportICS godoc
// @Summary     Download an iCalendar file
// @Tags        Backup
// @Produce     plain
// @Success     200 {file} file
// @Router      /api/v1/backup/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	sendFile(c, f)
}

// ImportICS godoc
// @Summary     Import an iCalendar file
// @Description Appends every VEVENT as a new event.
// @Tags        Backup
// @Accept      plain,mpfd
// @Produce     json
// @Param       file formData file false "iCalendar file"
// @Success     200 {object} importICSResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/backup/import.ics [POST]
func (h *handler) ImportICS(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processImportBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportICS(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, importICSResp{Added: output.Added, Skipped: output.Skipped})
}

// Publish godoc
// @Summary     Publish upcoming events to Google Calendar
// @Tags        Backup
// @Accept      json
// @Produce     json
// @Param       body body publishReq false "Window"
// @Success     200 {object} publishResp
// @Failure     503 {object} response.Resp "Publishing not configured"
// @Router      /api/v1/backup/publish [POST]
func (h *handler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPublishReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Publish(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Publish: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPublishResp(output))
}
