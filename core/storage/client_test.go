package storage_test

import (
	"context"
	"errors"
	"testing"

	"lab-inventory/core/storage"
	"lab-inventory/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureBucketSkipsExisting(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lab-reports").Return(true, nil)

	err := storage.EnsureBucket(context.Background(), client, storage.Config{Bucket: "lab-reports"})
	assert.NoError(t, err)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureBucketCreatesMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lab-reports").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "lab-reports", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

	cfg := storage.Config{Bucket: "lab-reports", Region: "us-east-1"}
	err := storage.EnsureBucket(context.Background(), client, cfg)
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestEnsureBucketPropagatesCheckFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lab-reports").Return(false, errors.New("connection refused"))

	err := storage.EnsureBucket(context.Background(), client, storage.Config{Bucket: "lab-reports"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lab-reports")
}
