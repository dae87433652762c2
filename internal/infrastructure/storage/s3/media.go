package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"futuremail/internal/domain/media"
)

// MediaStore keeps capsule attachments as S3 objects under a deterministic
// key per capsule, so a re-upload overwrites and "newest wins" holds without
// extra bookkeeping. Content type travels as object metadata.
type MediaStore struct {
	client *s3.Client
	bucket string
}

func NewMediaStore(ctx context.Context, bucket, region, endpoint string) (*MediaStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			// Local development against MinIO or LocalStack.
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &MediaStore{client: client, bucket: bucket}, nil
}

func (s *MediaStore) Save(ctx context.Context, m *media.Media) (int64, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey(m.CapsuleID)),
		Body:        bytes.NewReader(m.Data),
		ContentType: aws.String(m.ContentType),
	})
	if err != nil {
		return 0, fmt.Errorf("put media object: %w", err)
	}
	// S3 objects carry no row id; the capsule id is the handle.
	return m.CapsuleID, nil
}

func (s *MediaStore) GetByCapsule(ctx context.Context, capsuleID int64) (*media.Media, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(capsuleID)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, media.ErrNotFound
		}
		return nil, fmt.Errorf("get media object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read media object: %w", err)
	}

	m := &media.Media{
		ID:        capsuleID,
		CapsuleID: capsuleID,
		Data:      data,
	}
	if out.ContentType != nil {
		m.ContentType = *out.ContentType
	}
	if out.LastModified != nil {
		m.UploadedAt = *out.LastModified
	}
	return m, nil
}

func objectKey(capsuleID int64) string {
	return fmt.Sprintf("capsules/%d/image", capsuleID)
}
