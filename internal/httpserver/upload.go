package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/pkg/logging"
)

const uploadField = "image"

type UploadHTTP struct {
	Svc            *service.ImageService
	MaxRequestSize int64
}

func (h *UploadHTTP) Upload(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()
	l := logging.FromContext(ctx).With("handler", "upload.image")

	if err := service.CheckRequestSize(req.ContentLength, h.MaxRequestSize); err != nil {
		l.Warn("upload_error", "status", 413, "reason", "content length over limit", "size", req.ContentLength)
		return uploadError(err)
	}
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.MaxRequestSize)

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var mbe *http.MaxBytesError
		switch {
		case errors.As(err, &mbe):
			l.Warn("upload_error", "status", 413, "reason", "body over limit", "error", err)
			return uploadError(service.RequestTooLarge(h.MaxRequestSize, "over "+service.FormatMB(mbe.Limit)))
		case errors.Is(err, http.ErrMissingFile):
			l.Warn("upload_error", "status", 400, "reason", "missing image field", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "no file part")
		}
		l.Warn("upload_error", "status", 400, "reason", "invalid multipart form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	src, err := fh.Open()
	if err != nil {
		l.Error("upload_error", "status", 500, "reason", "cannot open upload", "error", err)
		return internalError("error reading file", err)
	}
	defer src.Close()

	res, err := h.Svc.Upload(ctx, fh.Filename, fh.Size, src)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("upload_error", "status", 400, "reason", "validation", "error", err)
			return uploadError(err)
		}
		l.Error("upload_error", "status", 500, "reason", "cannot save file", "error", err)
		return internalError("error saving file", err)
	}

	l.Info("upload_success", "image_url", res.ImageURL, "file_size", res.FileSize)
	return c.JSON(http.StatusCreated, res)
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, service.ErrTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return internalError("error saving file", err)
}

// Serve streams a stored upload. Any origin may embed the images.
func (h *UploadHTTP) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.serve")

	name := c.Param("filename")
	c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")

	obj, err := h.Svc.Open(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("serve_file_error", "status", 404, "reason", "file not found", "file", name)
			return echo.NewHTTPError(http.StatusNotFound, "file not found")
		}
		l.Error("serve_file_error", "status", 500, "reason", "cannot open file", "error", err)
		return internalError("error reading file", err)
	}
	defer obj.Body.Close()

	http.ServeContent(c.Response(), c.Request(), name, obj.ModTime, obj.Body)
	return nil
}
