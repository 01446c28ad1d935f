// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds clients for third-party HTTP APIs.
//
// [CloudinaryAdapter] uploads entry photos to the Cloudinary media CDN using
// signed REST calls. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/selisih-berat/models"
)

// MediaUploader stores images on a remote media service.
type MediaUploader interface {
	// Upload sends photo and returns its HTTPS delivery URL.
	Upload(ctx context.Context, photo models.Photo) (string, error)

	// Delete removes the image served at url.
	Delete(ctx context.Context, url string) error
}
