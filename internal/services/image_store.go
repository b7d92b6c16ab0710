package services

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// imageMimeTypes maps the supported extensions to serving MIME types.
// Filenames are generated server-side; the extension is the only part kept
// from an upload.
var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
}

// uploadExtByMime is the upload allow-list, mapped to the extension used
// when the original filename carries none.
var uploadExtByMime = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
}

// ImageStore manages the image files on the configured volume. Each file is
// a leaf: created by upload, read by listing/serving, removed by delete.
// Nothing tracks references from screens or layouts to files.
type ImageStore struct {
	Root string
}

type ImageInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	URL        string    `json:"url"`
}

type ImagePage struct {
	Items      []ImageInfo `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

type StoredImage struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	ModifiedAt   time.Time `json:"modified_at"`
	URL          string    `json:"url"`
}

type ServedImage struct {
	Data       []byte
	MimeType   string
	Size       int64
	ModifiedAt time.Time
}

func servingURL(name string) string {
	return "/api/images/" + url.PathEscape(name)
}

// ListAll enumerates the supported image files newest-modified first. A
// missing volume directory is created on the spot and yields an empty list.
func (s *ImageStore) ListAll() ([]ImageInfo, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}
	infos := make([]ImageInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if _, ok := imageMimeTypes[ext]; !ok {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, ImageInfo{
			Name:       e.Name(),
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
			URL:        servingURL(e.Name()),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ModifiedAt.After(infos[j].ModifiedAt)
	})
	return infos, nil
}

// ListPaginated slices the full listing into pages. Limit is clamped to
// [1,100], page to >= 1.
func (s *ImageStore) ListPaginated(page, limit int) (*ImagePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	total := len(all)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &ImagePage{
		Items:      all[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Upload decodes a base64 payload (a data-URL prefix is stripped) and writes
// it under a generated name. Only the extension survives from the original
// filename, which rules out collisions and traversal by construction.
func (s *ImageStore) Upload(originalName, payload, mimeType string) (*StoredImage, error) {
	ext, ok := uploadExtByMime[strings.ToLower(strings.TrimSpace(mimeType))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrValidation, mimeType)
	}
	if origExt := strings.ToLower(filepath.Ext(originalName)); origExt != "" {
		if _, known := imageMimeTypes[origExt]; known {
			ext = origExt
		}
	}
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not valid base64", ErrValidation)
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return nil, err
	}
	name := uuid.NewString() + ext
	path := filepath.Join(s.Root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &StoredImage{
		Name:         name,
		OriginalName: originalName,
		Size:         fi.Size(),
		ModifiedAt:   fi.ModTime(),
		URL:          servingURL(name),
	}, nil
}

// Delete removes a stored image. Dangling references from screens or
// layouts are accepted; nothing is updated on their side.
func (s *ImageStore) Delete(name string) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: image %s", ErrNotFound, name)
		}
		return err
	}
	return os.Remove(path)
}

// Serve returns a stored image's bytes with its MIME type, size and
// last-modified time. Names are never reused once generated, so callers can
// cache the response as immutable.
func (s *ImageStore) Serve(name string) (*ServedImage, error) {
	path, err := s.safePath(name)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: image %s", ErrNotFound, name)
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &ServedImage{
		Data:       data,
		MimeType:   imageMimeTypes[strings.ToLower(filepath.Ext(name))],
		Size:       fi.Size(),
		ModifiedAt: fi.ModTime(),
	}, nil
}

// safePath validates a client-supplied image name and resolves it strictly
// inside the volume root. Names are server-generated, so anything with a
// separator, a traversal sequence or an unknown extension is rejected
// before touching the filesystem.
func (s *ImageStore) safePath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid image name", ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := imageMimeTypes[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported image type", ErrValidation)
	}
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, name)
	if filepath.Dir(path) != root {
		return "", fmt.Errorf("%w: invalid image name", ErrValidation)
	}
	return path, nil
}
