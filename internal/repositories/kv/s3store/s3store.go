// Package s3store stores each key as an object in an S3-compatible bucket
// (AWS S3, MinIO). Object names are the configured prefix followed by the key.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"golang.org/x/sync/errgroup"
)

// ObjectAPI is the subset of *s3.Client the repository needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Options configures the client built by Open.
type Options struct {
	Bucket       string
	Prefix       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type Repository struct {
	api    ObjectAPI
	bucket string
	prefix string
}

func NewRepository(api ObjectAPI, bucket, prefix string) *Repository {
	return &Repository{api: api, bucket: bucket, prefix: prefix}
}

// Open builds an S3 client from opts. Static credentials are used when an
// access key is given, otherwise the default AWS credential chain applies.
func Open(ctx context.Context, opts Options) (*Repository, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is not set")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewRepository(client, opts.Bucket, opts.Prefix), nil
}

func (r *Repository) objectKey(key string) string {
	return r.prefix + key
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(r.objectKey(key)),
		Body:          bytes.NewReader(value),
		ContentLength: aws.Int64(int64(len(value))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	_, err := r.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// keys pages through every object under the prefix and returns the kv keys.
func (r *Repository) keys(ctx context.Context) ([]string, error) {
	p := s3.NewListObjectsV2Paginator(r.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(r.prefix),
	})

	var keys []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, strings.TrimPrefix(aws.ToString(obj.Key), r.prefix))
		}
	}
	return keys, nil
}

// fetchConcurrency bounds parallel GetObject/DeleteObject calls.
const fetchConcurrency = 8

func (r *Repository) List(ctx context.Context) (map[string][]byte, error) {
	keys, err := r.keys(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := make(map[string][]byte, len(keys))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(fetchConcurrency)
	for _, k := range keys {
		eg.Go(func() error {
			v, err := r.Get(egCtx, k)
			if err != nil {
				return err
			}
			// Deleted between listing and fetching.
			if v == nil {
				return nil
			}
			mu.Lock()
			result[k] = v
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) Clear(ctx context.Context) error {
	keys, err := r.keys(ctx)
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(fetchConcurrency)
	for _, k := range keys {
		eg.Go(func() error {
			return r.Delete(egCtx, k)
		})
	}
	return eg.Wait()
}

func (r *Repository) Close() error {
	return nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
