package upload

import (
	"bytes"
	"context"
	"path"
	"strings"

	"lab-website-system/config"
	"lab-website-system/tools"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// s3Backend S3 兼容对象存储后端
type s3Backend struct {
	cfg      config.S3
	client   *s3.Client
	uploader *manager.Uploader
}

func (b *s3Backend) init(cfg config.S3) {
	b.cfg = cfg

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	tools.PanicOnErr(err)

	b.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	b.uploader = manager.NewUploader(b.client)
}

func (b *s3Backend) enabled() bool {
	return b.client != nil
}

func (b *s3Backend) key(rel string) string {
	key := path.Join(strings.Trim(b.cfg.Prefix, "/"), rel)
	return strings.TrimLeft(key, "/")
}

func (b *s3Backend) objectURL(key string) string {
	base := strings.TrimRight(b.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(b.cfg.Endpoint, "/")
	}
	if b.cfg.UsePathStyle {
		return base + "/" + b.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}

func (b *s3Backend) put(ctx context.Context, rel string, data []byte, contentType string) (string, error) {
	key := b.key(rel)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := b.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "s3 upload")
	}
	return b.objectURL(key), nil
}

// keyFromURL 从访问 URL 还原对象 key，无法还原时返回空串
func (b *s3Backend) keyFromURL(url string) string {
	base := strings.TrimRight(b.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(b.cfg.Endpoint, "/")
	}
	prefix := base + "/"
	if b.cfg.UsePathStyle {
		prefix += b.cfg.Bucket + "/"
	}
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}

func (b *s3Backend) deleteByURL(ctx context.Context, url string) error {
	if !b.enabled() {
		return nil
	}
	key := b.keyFromURL(url)
	if key == "" {
		return nil
	}
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(key),
	})
	return errors.Wrap(err, "s3 delete")
}
