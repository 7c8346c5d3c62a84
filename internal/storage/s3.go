// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the S3-compatible media host client behind the
// admin file manager. All site assets live in one public bucket under a
// fixed prefix; the file manager lists, uploads, deletes, and renames
// objects there. Wraps the AWS SDK v2 configured for path-style access
// (required by CEPH/Hetzner).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Prefix is the fixed key prefix the file manager operates under. Objects
// outside it are invisible to the admin panel.
const Prefix = "uploads/"

// Object describes one stored asset as the file manager sees it.
type Object struct {
	// PublicID is the object key relative to Prefix. It is the handle the
	// file-manager API uses for delete and rename.
	PublicID     string    `json:"publicId"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Client wraps an S3 client for media operations on the site bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without storage; the file manager then reports itself unavailable.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// key resolves a public ID to its full object key.
func key(publicID string) string {
	return Prefix + strings.TrimPrefix(publicID, Prefix)
}

// List returns every asset under the fixed prefix, paging through the
// bucket as needed.
func (c *Client) List(ctx context.Context) ([]Object, error) {
	var objects []Object

	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(Prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", c.bucket, err)
		}
		for _, obj := range page.Contents {
			k := aws.ToString(obj.Key)
			if k == Prefix {
				continue // the prefix placeholder itself
			}
			objects = append(objects, Object{
				PublicID:     strings.TrimPrefix(k, Prefix),
				URL:          c.FileURL(k),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

// Upload stores an asset under the fixed prefix with public-read ACL and
// returns its descriptor.
func (c *Client) Upload(ctx context.Context, publicID, contentType string, body io.Reader, size int64) (Object, error) {
	k := key(publicID)
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(k),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return Object{}, fmt.Errorf("s3 upload %s/%s: %w", c.bucket, k, err)
	}
	return Object{
		PublicID:     strings.TrimPrefix(k, Prefix),
		URL:          c.FileURL(k),
		Size:         size,
		LastModified: time.Now(),
	}, nil
}

// Download retrieves an asset's contents. Used for regenerating image
// thumbnails from the stored original.
func (c *Client) Download(ctx context.Context, publicID string) ([]byte, error) {
	k := key(publicID)
	output, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(k),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download %s/%s: %w", c.bucket, k, err)
	}
	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read body %s/%s: %w", c.bucket, k, err)
	}
	return data, nil
}

// Delete removes an asset.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	k := key(publicID)
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(k),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, k, err)
	}
	return nil
}

// Rename moves an asset to a new public ID via copy-then-delete; S3 has no
// native rename. Returns the descriptor of the renamed object.
func (c *Client) Rename(ctx context.Context, publicID, newPublicID string) (Object, error) {
	src := key(publicID)
	dst := key(newPublicID)
	if src == dst {
		return Object{PublicID: strings.TrimPrefix(dst, Prefix), URL: c.FileURL(dst)}, nil
	}

	_, err := c.s3.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(c.bucket),
		CopySource: aws.String(c.bucket + "/" + src),
		Key:        aws.String(dst),
		ACL:        s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return Object{}, fmt.Errorf("s3 copy %s -> %s: %w", src, dst, err)
	}
	if err := c.Delete(ctx, publicID); err != nil {
		return Object{}, fmt.Errorf("s3 rename cleanup: %w", err)
	}
	return Object{
		PublicID:     strings.TrimPrefix(dst, Prefix),
		URL:          c.FileURL(dst),
		LastModified: time.Now(),
	}, nil
}

// FileURL returns the public URL for an object key. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// Bucket returns the name of the site bucket.
func (c *Client) Bucket() string {
	return c.bucket
}

// ExtractPublicID extracts a file-manager public ID from a public file URL.
// Returns ("", false) if the URL doesn't belong to this storage or lies
// outside the managed prefix.
func (c *Client) ExtractPublicID(rawURL string) (string, bool) {
	var k string
	if c.publicURL != "" && strings.HasPrefix(rawURL, c.publicURL+"/") {
		k = rawURL[len(c.publicURL)+1:]
	} else if prefix := c.endpoint + "/" + c.bucket + "/"; strings.HasPrefix(rawURL, prefix) {
		k = rawURL[len(prefix):]
	} else {
		return "", false
	}
	if !strings.HasPrefix(k, Prefix) {
		return "", false
	}
	return strings.TrimPrefix(k, Prefix), true
}
