package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jteo/listify-backend/internal/app/model"
)

// S3Archive stores a JSON copy of each accepted submission under
// submissions/{externalID}.json. It is best-effort: the caller logs
// and ignores failures.
type S3Archive struct {
	client *s3.Client
	bucket string
}

func NewS3Archive(region, bucket, accessKeyID, secretAccessKey string) *S3Archive {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	return &S3Archive{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

// ArchiveSubmission writes the draft as it was accepted by the
// directory.
func (s *S3Archive) ArchiveSubmission(ctx context.Context, externalID string, draft *model.Draft) error {
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	key := fmt.Sprintf("submissions/%s.json", externalID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive submission %s: %w", externalID, err)
	}
	return nil
}
