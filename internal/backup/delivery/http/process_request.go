package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-pro/internal/backup"
)

// processImportBody reads the upload from a multipart "file" field or,
// for any other content type, from the raw request body.
func (h *handler) processImportBody(c *gin.Context) (backup.ImportInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return backup.ImportInput{}, translateReadErr(err)
		}
		f, err := fh.Open()
		if err != nil {
			return backup.ImportInput{}, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return backup.ImportInput{}, translateReadErr(err)
	}
	return backup.ImportInput{Data: data}, nil
}

func translateReadErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return err
}

func (h *handler) processPublishReq(c *gin.Context) (publishReq, error) {
	var req publishReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	err := c.ShouldBindJSON(&req)
	return req, err
}
