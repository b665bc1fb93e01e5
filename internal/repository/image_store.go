package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GridFSImageStore keeps event images in a GridFS bucket, one file per
// object path.
type GridFSImageStore struct {
	bucket *mongo.GridFSBucket
}

func NewGridFSImageStore(db *mongo.Database, bucketName string) *GridFSImageStore {
	return &GridFSImageStore{
		bucket: db.GridFSBucket(options.GridFSBucket().SetName(bucketName)),
	}
}

func (s *GridFSImageStore) Put(ctx context.Context, path, contentType string, r io.Reader) error {
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	if _, err := s.bucket.UploadFromStream(ctx, path, r, opts); err != nil {
		return fmt.Errorf("upload %q: %w", path, err)
	}
	return nil
}

func (s *GridFSImageStore) Open(ctx context.Context, path string) (*Object, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(ctx, path)
	if errors.Is(err, mongo.ErrFileNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	file := stream.GetFile()
	obj := &Object{ReadCloser: stream, Size: file.Length, ContentType: "application/octet-stream"}
	if file.Metadata != nil {
		if ct, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && ct != "" {
			obj.ContentType = ct
		}
	}
	return obj, nil
}

// Delete removes every revision stored under path.
func (s *GridFSImageStore) Delete(ctx context.Context, path string) error {
	cursor, err := s.bucket.Find(ctx, bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("find %q: %w", path, err)
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return fmt.Errorf("decode files %q: %w", path, err)
	}
	if len(files) == 0 {
		return ErrNotFound
	}
	for _, f := range files {
		if err := s.bucket.Delete(ctx, f.ID); err != nil && !errors.Is(err, mongo.ErrFileNotFound) {
			return fmt.Errorf("delete %q: %w", path, err)
		}
	}
	return nil
}
