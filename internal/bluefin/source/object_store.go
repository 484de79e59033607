package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultS3Endpoint = "s3.amazonaws.com"
	latestObjectName  = "latest"
	noSuchKey         = "NoSuchKey"
)

// ObjectStoreOptions carries credentials for the bucket. Empty keys mean anonymous access.
type ObjectStoreOptions struct {
	AccessKey string
	SecretKey string
	Region    string
}

// ObjectStoreSource reads <prefix>/<sequence>.json objects from an S3-compatible bucket.
// The newest exported checkpoint number is kept in <prefix>/latest.
type ObjectStoreSource struct {
	client *minio.Client
	bucket string
	prefix string
}

type storeLocation struct {
	endpoint string
	secure   bool
	bucket   string
	prefix   string
}

// parseStoreURL accepts s3://bucket/prefix and http(s)://endpoint/bucket/prefix.
func parseStoreURL(raw string) (storeLocation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return storeLocation{}, fmt.Errorf("parse remote store url: %w", err)
	}

	var loc storeLocation
	switch u.Scheme {
	case "s3":
		loc.endpoint = defaultS3Endpoint
		loc.secure = true
		loc.bucket = u.Host
		loc.prefix = strings.Trim(u.Path, "/")
	case "http", "https":
		loc.endpoint = u.Host
		loc.secure = u.Scheme == "https"
		parts := strings.SplitN(strings.Trim(u.Path, "/"), "/", 2)
		loc.bucket = parts[0]
		if len(parts) == 2 {
			loc.prefix = parts[1]
		}
	default:
		return storeLocation{}, fmt.Errorf("unsupported remote store scheme %q", u.Scheme)
	}

	if loc.endpoint == "" || loc.bucket == "" {
		return storeLocation{}, fmt.Errorf("remote store url %q must name an endpoint and a bucket", raw)
	}
	return loc, nil
}

// NewObjectStoreSource constructs an ObjectStoreSource from a remote store url.
func NewObjectStoreSource(rawURL string, opts ObjectStoreOptions) (*ObjectStoreSource, error) {
	loc, err := parseStoreURL(rawURL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(loc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: loc.secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &ObjectStoreSource{client: client, bucket: loc.bucket, prefix: loc.prefix}, nil
}

func (s *ObjectStoreSource) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// LatestCheckpoint reads the latest marker object.
func (s *ObjectStoreSource) LatestCheckpoint(ctx context.Context) (uint64, error) {
	data, err := s.get(ctx, s.key(latestObjectName))
	if err != nil {
		return 0, fmt.Errorf("latest checkpoint: %w", err)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse latest checkpoint: %w", err)
	}
	return n, nil
}

// FetchCheckpoint downloads and decodes checkpoint n.
func (s *ObjectStoreSource) FetchCheckpoint(ctx context.Context, n uint64) (*model.Checkpoint, error) {
	data, err := s.get(ctx, s.key(checkpointName(n)))
	if err != nil {
		return nil, fmt.Errorf("checkpoint %d: %w", n, err)
	}
	return decodeCheckpoint(n, data)
}

func (s *ObjectStoreSource) get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapObjectError(err)
	}
	defer func() {
		_ = obj.Close()
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapObjectError(err)
	}
	return data, nil
}

func mapObjectError(err error) error {
	if minio.ToErrorResponse(err).Code == noSuchKey {
		return ErrCheckpointNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("get object: %w", err)
}
