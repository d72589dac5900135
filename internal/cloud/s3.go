package cloud

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store backs the drive with an S3 (or MinIO) bucket. Folder paths map to
// key prefixes; folders are materialized as zero-byte marker objects so
// empty folders survive listings.
type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

// NewS3Store creates the production drive from environment configuration.
func NewS3Store(ctx context.Context) (*S3Store, error) {
	bucket := os.Getenv("AWS_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET environment variable is required")
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		endpointURL := os.Getenv("AWS_ENDPOINT_URL")
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true // MinIO requires path-style addressing
		}
	})

	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// CreateFolder writes the folder's zero-byte marker. Re-creating an existing
// folder simply rewrites the marker.
func (s *S3Store) CreateFolder(ctx context.Context, name, parentPath string) error {
	key := normalize(path.Join(parentPath, name)) + "/"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(nil),
	})
	if err != nil {
		return fmt.Errorf("failed to create folder %s: %w", key, err)
	}
	return nil
}

// Upload stores the artifact under folderPath and returns its object key.
func (s *S3Store) Upload(ctx context.Context, fileName string, content []byte, folderPath string) (string, error) {
	key := normalize(path.Join(folderPath, fileName))

	hash := sha256.Sum256(content)
	contentType := mime.TypeByExtension(path.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"content-hash": hex.EncodeToString(hash[:]),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// ListChildren lists one level of the folder using a delimited prefix scan.
func (s *S3Store) ListChildren(ctx context.Context, folderPath string) ([]Item, error) {
	prefix := normalize(folderPath)
	if prefix != "" {
		prefix += "/"
	}

	var items []Item
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", folderPath, err)
		}

		for _, cp := range page.CommonPrefixes {
			full := strings.TrimSuffix(aws.ToString(cp.Prefix), "/")
			items = append(items, Item{
				ID:       full,
				Name:     path.Base(full),
				IsFolder: true,
			})
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == prefix || strings.HasSuffix(key, "/") {
				continue // folder markers
			}
			item := Item{
				ID:            key,
				Name:          path.Base(key),
				FileExtension: strings.TrimPrefix(path.Ext(key), "."),
				SizeBytes:     aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				item.LastModified = *obj.LastModified
			}
			items = append(items, item)
		}
	}

	return items, nil
}
