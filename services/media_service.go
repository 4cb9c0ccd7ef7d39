package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService hands out presigned S3 URLs for profile media. Clients upload
// photos and short videos directly to S3 and register the returned keys as the
// profile's mediaRefs.
type MediaService struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewMediaService(client *s3.Client, bucket string) *MediaService {
	return &MediaService{Presigner: s3.NewPresignClient(client), Bucket: bucket}
}

// GenerateUploadURL generates a presigned URL for uploading a media file
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-media/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presignedURL, err := ms.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a media file
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presignedURL, err := ms.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
