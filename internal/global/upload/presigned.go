package upload

import (
	"context"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// PresignRequest 预签名上传请求参数
type PresignRequest struct {
	Filename    string // 原始文件名，仅用于扩展名校验与生成 key
	ContentType string
	ExpiresIn   int64 // 秒，默认 15 分钟
}

// PresignResponse 预签名上传响应
type PresignResponse struct {
	UploadURL string            `json:"upload_url"`
	FileKey   string            `json:"file_key"`
	FileURL   string            `json:"file_url"` // 上传成功后的访问 URL
	ExpiresAt time.Time         `json:"expires_at"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
}

// ErrS3Disabled 未配置对象存储
var ErrS3Disabled = errors.New("object storage not configured")

// PresignUpload 生成预签名 PUT，前端直传 S3 不经过后端中转。
// 扩展名同样受允许列表约束。
func (s *Store) PresignUpload(ctx context.Context, subdir string, req PresignRequest) (*PresignResponse, error) {
	if !s.s3.enabled() {
		return nil, errors.WithStack(ErrS3Disabled)
	}
	if !Allowed(req.Filename) {
		return nil, errors.WithStack(ErrDisallowedType)
	}

	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900
	}

	key := s.s3.key(subdir + "/" + randomName(req.Filename))

	contentType := req.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(req.Filename)))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(s.s3.client)
	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, errors.Wrap(err, "presign put object")
	}

	resp := &PresignResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   s.s3.objectURL(key),
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	}
	for k, v := range presignedReq.SignedHeader {
		if len(v) > 0 {
			resp.Headers[k] = v[0]
		}
	}
	return resp, nil
}
