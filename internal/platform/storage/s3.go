package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/phrazzld/passport-api/internal/domain"
)

// objectPutter is the part of *s3.Client used for uploads.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads images to an S3 bucket and returns their virtual-hosted URL.
type S3Store struct {
	logger *slog.Logger
	client objectPutter
	bucket string
	region string
	folder string
}

var _ ImageStore = (*S3Store)(nil)

// NewS3Store loads the default AWS credential chain for region and returns a
// store writing into bucket under folder.
func NewS3Store(ctx context.Context, logger *slog.Logger, bucket, region, folder string) (*S3Store, error) {
	if bucket == "" || region == "" {
		return nil, fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidConfig)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: load AWS config: %v", ErrInvalidConfig, err)
	}

	return newS3Store(logger, s3.NewFromConfig(awsCfg), bucket, region, folder)
}

func newS3Store(logger *slog.Logger, client objectPutter, bucket, region, folder string) (*S3Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: s3 client cannot be nil", ErrInvalidConfig)
	}

	return &S3Store{
		logger: logger,
		client: client,
		bucket: bucket,
		region: region,
		folder: folder,
	}, nil
}

// Upload puts img into the bucket under a fresh key.
func (s *S3Store) Upload(ctx context.Context, img domain.Image) (*domain.StoredImage, error) {
	if len(img.Data) == 0 {
		return nil, ErrEmptyImage
	}

	publicID := newPublicID()
	key := objectKey(s.folder, publicID+extensionFor(img.MIMEType))

	contentType := img.MIMEType
	if contentType == "" {
		contentType = "image/png"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "S3 upload failed", "bucket", s.bucket, "key", key, "error", err)
		return nil, uploadError("s3 put object", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	s.logger.InfoContext(ctx, "Stored image in S3",
		"bucket", s.bucket,
		"key", key,
		"bytes", len(img.Data))

	return &domain.StoredImage{URL: url, PublicID: objectKey(s.folder, publicID)}, nil
}
