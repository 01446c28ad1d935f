package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/models"
)

const cloudinaryRetries = 2

// versionSegment matches the "v<digits>" path element of a delivery URL.
var versionSegment = regexp.MustCompile(`^v\d+$`)

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// CloudinaryAdapter uploads and deletes images through the Cloudinary
// upload API with signed requests.
type CloudinaryAdapter struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string
	folder    string

	now    func() time.Time
	logger *logger.Logger
}

var _ MediaUploader = (*CloudinaryAdapter)(nil)

// NewCloudinaryAdapter builds an adapter for the configured cloud.
func NewCloudinaryAdapter(cfg config.Cloudinary, log *logger.Logger) *CloudinaryAdapter {
	log.Info().Str("cloud", cfg.CloudName).Msg("photo storage: cloudinary")
	return &CloudinaryAdapter{
		client:    utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout, cloudinaryRetries),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		now:       time.Now,
		logger:    log,
	}
}

func (c *CloudinaryAdapter) endpoint(action string) string {
	return fmt.Sprintf("/v1_1/%s/image/%s", c.cloudName, action)
}

// signed adds api_key, timestamp and signature to params.
func (c *CloudinaryAdapter) signed(params map[string]string) map[string]string {
	params["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	params["signature"] = utils.SignParams(params, c.apiSecret)
	params["api_key"] = c.apiKey
	return params
}

// Upload sends photo as a multipart file and returns its secure URL.
func (c *CloudinaryAdapter) Upload(ctx context.Context, photo models.Photo) (string, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{}
	if c.folder != "" {
		params["folder"] = c.folder
	}

	filename := photo.Filename
	if filename == "" {
		filename = "photo"
	}

	content, err := seekable(photo.Content)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: read photo: %w", err)
	}

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartFormData(c.signed(params)).
		SetMultipartField("file", filename, photo.ContentType, content).
		SetResult(&result).
		Post(c.endpoint("upload"))
	if err != nil {
		log.Err(err).Str("func", "*CloudinaryAdapter.Upload").Msg("upload request failed")
		return "", fmt.Errorf("cloudinary upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*CloudinaryAdapter.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return "", err
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: %w: empty secure_url", ErrBadGateway)
	}

	return result.SecureURL, nil
}

// seekable returns r itself when it can be rewound for a retry, otherwise
// its content buffered in memory.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Delete destroys the asset served at url. A missing asset is not an error.
func (c *CloudinaryAdapter) Delete(ctx context.Context, url string) error {
	publicID, err := PublicIDFromURL(url)
	if err != nil {
		return err
	}

	var result destroyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(c.signed(map[string]string{"public_id": publicID})).
		SetResult(&result).
		Post(c.endpoint("destroy"))
	if err != nil {
		return fmt.Errorf("cloudinary destroy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	switch result.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, result.Result)
	}
}

// PublicIDFromURL extracts the public id from a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v1712/<folder>/<id>.jpg.
func PublicIDFromURL(url string) (string, error) {
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok || rest == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidMediaURL, url)
	}

	segments := strings.Split(rest, "/")
	for i, s := range segments {
		if versionSegment.MatchString(s) {
			segments = segments[i+1:]
			break
		}
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidMediaURL, url)
	}

	id := strings.Join(segments, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidMediaURL, url)
	}
	return id, nil
}
