// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_files.go is the JSON API behind the media file manager. The object
// store is the single source of truth: listing, upload, rename, and delete
// all operate on S3 keys directly, with no database mirror to drift out of
// sync.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"vetlaunch/internal/slug"
)

const (
	// maxUploadSize is the maximum allowed file upload size (50 MB).
	maxUploadSize = 50 << 20

	// thumbPrefix namespaces generated thumbnails inside the upload area.
	// The file listing hides them; the grid uses them as preview images.
	thumbPrefix = "thumbs/"

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded image size to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"video/mp4":       true,
	"video/webm":      true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// fileView is one entry in the file-manager grid.
type fileView struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl,omitempty"`
	Size     int64  `json:"size"`
}

// FilesList returns every uploaded file as JSON. Thumbnails are folded into
// their originals rather than listed as files of their own.
func (a *Admin) FilesList(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeFileError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	objects, err := a.storageClient.List(r.Context())
	if err != nil {
		slog.Error("s3 list failed", "error", err)
		writeFileError(w, "Failed to list files.", http.StatusInternalServerError)
		return
	}

	thumbs := make(map[string]string)
	for _, obj := range objects {
		if strings.HasPrefix(obj.PublicID, thumbPrefix) {
			thumbs[strings.TrimPrefix(obj.PublicID, thumbPrefix)] = obj.URL
		}
	}

	files := make([]fileView, 0, len(objects))
	for _, obj := range objects {
		if strings.HasPrefix(obj.PublicID, thumbPrefix) {
			continue
		}
		files = append(files, fileView{
			PublicID: obj.PublicID,
			URL:      obj.URL,
			ThumbURL: thumbs[thumbName(obj.PublicID)],
			Size:     obj.Size,
		})
	}

	writeFileJSON(w, http.StatusOK, map[string]any{"success": true, "files": files})
}

// FilesUpload handles a multipart file upload. The stored name is the
// original filename sanitized to a URL-safe slug; uploading the same name
// twice replaces the earlier file.
func (a *Admin) FilesUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeFileError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeFileError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeFileError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeFileError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeFileError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType reports text/xml or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeFileError(w, fmt.Sprintf("File type %q is not allowed.", contentType), http.StatusBadRequest)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeFileError(w, "Failed to process file.", http.StatusInternalServerError)
		return
	}

	publicID := slug.Filename(header.Filename)
	if publicID == "" {
		writeFileError(w, "Filename is not usable.", http.StatusBadRequest)
		return
	}

	// The file is read fully into memory for upload and thumbnailing;
	// maxUploadSize bounds the cost.
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeFileError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	obj, err := a.storageClient.Upload(ctx, publicID, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		slog.Error("s3 upload failed", "error", err, "public_id", publicID)
		writeFileError(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	view := fileView{PublicID: obj.PublicID, URL: obj.URL, Size: obj.Size}
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "public_id", publicID)
		} else if thumbData != nil {
			tk := thumbPrefix + thumbName(publicID)
			thumb, err := a.storageClient.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData)))
			if err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "public_id", tk)
			} else {
				view.ThumbURL = thumb.URL
			}
		}
	}

	writeFileJSON(w, http.StatusCreated, map[string]any{"success": true, "file": view})
}

// FilesDelete removes a file and its thumbnail, if any. Deleting a file
// that is already gone succeeds.
func (a *Admin) FilesDelete(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeFileError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		PublicID string `json:"publicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicID == "" {
		writeFileError(w, "Missing publicId.", http.StatusBadRequest)
		return
	}
	// The grid copies the public URL to the clipboard; accept it here too.
	if id, ok := a.storageClient.ExtractPublicID(req.PublicID); ok {
		req.PublicID = id
	}

	ctx := r.Context()
	if err := a.storageClient.Delete(ctx, req.PublicID); err != nil {
		slog.Error("s3 delete failed", "error", err, "public_id", req.PublicID)
		writeFileError(w, "Failed to delete file.", http.StatusInternalServerError)
		return
	}
	// Thumbnail cleanup is best-effort.
	if err := a.storageClient.Delete(ctx, thumbPrefix+thumbName(req.PublicID)); err != nil {
		slog.Warn("s3 thumbnail delete failed", "error", err, "public_id", req.PublicID)
	}

	writeFileJSON(w, http.StatusOK, map[string]any{"success": true})
}

// FilesRename renames a file in place. S3 has no rename, so this is a copy
// to the new key followed by a delete of the old one.
func (a *Admin) FilesRename(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeFileError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		PublicID    string `json:"publicId"`
		NewFilename string `json:"newFilename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicID == "" || req.NewFilename == "" {
		writeFileError(w, "Missing publicId or newFilename.", http.StatusBadRequest)
		return
	}

	newID := slug.Filename(req.NewFilename)
	if newID == "" {
		writeFileError(w, "New filename is not usable.", http.StatusBadRequest)
		return
	}
	// Keep the original extension when the new name has none.
	if path.Ext(newID) == "" {
		newID += path.Ext(req.PublicID)
	}
	if newID == req.PublicID {
		writeFileError(w, "New filename matches the current one.", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	obj, err := a.storageClient.Rename(ctx, req.PublicID, newID)
	if err != nil {
		slog.Error("s3 rename failed", "error", err, "from", req.PublicID, "to", newID)
		writeFileError(w, "Failed to rename file.", http.StatusInternalServerError)
		return
	}

	// Move the thumbnail along, best-effort.
	oldThumb := thumbPrefix + thumbName(req.PublicID)
	if _, err := a.storageClient.Rename(ctx, oldThumb, thumbPrefix+thumbName(newID)); err != nil {
		slog.Debug("thumbnail rename skipped", "error", err, "public_id", oldThumb)
	}

	view := fileView{PublicID: obj.PublicID, URL: obj.URL, Size: obj.Size}
	writeFileJSON(w, http.StatusOK, map[string]any{"success": true, "file": view})
}

// FilesRegenerateThumb rebuilds a thumbnail from the stored original, for
// assets uploaded before thumbnails existed or whose thumbnail was lost.
func (a *Admin) FilesRegenerateThumb(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeFileError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		PublicID string `json:"publicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicID == "" {
		writeFileError(w, "Missing publicId.", http.StatusBadRequest)
		return
	}
	if id, ok := a.storageClient.ExtractPublicID(req.PublicID); ok {
		req.PublicID = id
	}

	ctx := r.Context()
	data, err := a.storageClient.Download(ctx, req.PublicID)
	if err != nil {
		slog.Error("s3 download failed", "error", err, "public_id", req.PublicID)
		writeFileError(w, "Failed to fetch the original file.", http.StatusInternalServerError)
		return
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	if !thumbableTypes[http.DetectContentType(sniff)] {
		writeFileError(w, "This file type has no thumbnail.", http.StatusBadRequest)
		return
	}

	thumbData, err := generateThumbnail(bytes.NewReader(data), thumbMaxWidth)
	if err != nil {
		slog.Error("thumbnail regeneration failed", "error", err, "public_id", req.PublicID)
		writeFileError(w, "Failed to generate a thumbnail.", http.StatusInternalServerError)
		return
	}
	if thumbData == nil {
		writeFileError(w, "Image is already thumbnail-sized.", http.StatusBadRequest)
		return
	}

	tk := thumbPrefix + thumbName(req.PublicID)
	thumb, err := a.storageClient.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData)))
	if err != nil {
		slog.Error("thumbnail upload failed", "error", err, "public_id", tk)
		writeFileError(w, "Failed to store the thumbnail.", http.StatusInternalServerError)
		return
	}

	writeFileJSON(w, http.StatusOK, map[string]any{"success": true, "thumbUrl": thumb.URL})
}

// thumbName maps a file's publicId to its thumbnail filename: the same stem
// with a .jpg extension, since thumbnails are always JPEG.
func thumbName(publicID string) string {
	return strings.TrimSuffix(publicID, path.Ext(publicID)) + ".jpg"
}

// generateThumbnail creates a JPEG thumbnail from an image, constrained to
// maxWidth while preserving aspect ratio. Returns nil if the image is
// already smaller than maxWidth.
func generateThumbnail(src io.Reader, maxWidth int) ([]byte, error) {
	// Decode config first to check dimensions without a full decode.
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek: %w", err)
		}
	} else {
		return nil, fmt.Errorf("source does not support seeking")
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// writeFileJSON writes a JSON response for file-manager operations.
func writeFileJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeFileError writes a JSON error response for file-manager operations.
func writeFileError(w http.ResponseWriter, msg string, status int) {
	writeFileJSON(w, status, map[string]string{"error": msg})
}
