package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/api/metrics"
	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// maxUploadSize caps a single upload at 5 MiB.
const maxUploadSize = 5 << 20

type UploadHandler struct {
	fileService ports.FileService
}

func NewUploadHandler(fileService ports.FileService) *UploadHandler {
	return &UploadHandler{fileService: fileService}
}

type fileResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

func toFileResponse(f *domain.File) fileResponse {
	return fileResponse{
		ID:           f.ID,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.Size,
		URL:          "/uploads/" + f.Filename,
	}
}

// Upload stores a multipart file under a generated name and records its
// metadata against the caller.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to upload (max 5 MiB)"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}
	if header.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds the 5 MiB limit")
	}

	src, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	if int64(len(data)) > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds the 5 MiB limit")
	}

	file, err := h.fileService.Upload(c.Request().Context(), identity, ports.UploadInput{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Data:         data,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	metrics.UploadBytesTotal.Add(float64(file.Size))
	return respondData(c, http.StatusCreated, toFileResponse(file))
}

// Get returns a file's metadata and public URL.
//
// @Summary      Get file metadata
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{id} [get]
func (h *UploadHandler) Get(c echo.Context) error {
	file, err := h.fileService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toFileResponse(file))
}

// Delete removes the stored bytes and the metadata. Uploader only.
//
// @Summary      Delete a file
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{id} [delete]
func (h *UploadHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.fileService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "file deleted")
}
