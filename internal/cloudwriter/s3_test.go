package cloudwriter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/menuengine/internal/models"
)

type fakeS3 struct {
	puts []*s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, params)
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3ObjectUploadsOnClose(t *testing.T) {
	client := &fakeS3{}
	store := newS3Store(client, "menus", "exports")

	obj, err := store.Create(context.Background(), "hints/r1/data.parquet", ContentTypeParquet)
	require.NoError(t, err)
	assert.Equal(t, "exports/hints/r1/data.parquet", obj.Key())

	_, err = obj.Write([]byte("PAR1"))
	require.NoError(t, err)
	_, err = obj.Write([]byte("data"))
	require.NoError(t, err)
	assert.Empty(t, client.puts)

	require.NoError(t, obj.Close())
	require.Len(t, client.puts, 1)
	put := client.puts[0]
	assert.Equal(t, "menus", aws.ToString(put.Bucket))
	assert.Equal(t, "exports/hints/r1/data.parquet", aws.ToString(put.Key))
	assert.Equal(t, ContentTypeParquet, aws.ToString(put.ContentType))
	assert.Equal(t, int64(8), aws.ToInt64(put.ContentLength))
	assert.Equal(t, []byte("PAR1data"), client.body)
}

func TestS3ObjectIsWrittenOnce(t *testing.T) {
	client := &fakeS3{}
	obj, err := newS3Store(client, "menus", "").Create(context.Background(), "a.json", "")
	require.NoError(t, err)

	require.NoError(t, obj.Close())
	assert.ErrorIs(t, obj.Close(), ErrObjectClosed)
	_, err = obj.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrObjectClosed)
	assert.Len(t, client.puts, 1)
	assert.Nil(t, client.puts[0].ContentType)
}

func TestS3StoreErrors(t *testing.T) {
	store := newS3Store(&fakeS3{err: errors.New("denied")}, "menus", "")

	_, err := store.Create(context.Background(), "", ContentTypeParquet)
	assert.Error(t, err)

	obj, err := store.Create(context.Background(), "x", ContentTypeParquet)
	require.NoError(t, err)
	assert.ErrorContains(t, obj.Close(), "denied")
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(ctx, models.CloudStorageConfig{})
	require.NoError(t, err)
	assert.Nil(t, store)

	_, err = NewStore(ctx, models.CloudStorageConfig{Provider: "ftp"})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)

	_, err = NewStore(ctx, models.CloudStorageConfig{Provider: "s3"})
	assert.ErrorIs(t, err, ErrNoBucket)
}
