package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-feedback/internal/shared/storage/object"
)

type fakeAPI struct {
	objects map[string][]byte
	puts    []*s3.PutObjectInput
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{objects: map[string][]byte{}}
}

func (f *fakeAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "empty key", prefix: "uploads", key: "", want: "uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestSaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := NewWithClient(api, "bucket", "/resumes/", "")

	obj, err := store.Save(ctx, "guest:1", "cv.txt", strings.NewReader("plain resume text"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if obj.Size != int64(len("plain resume text")) {
		t.Fatalf("unexpected size %d", obj.Size)
	}
	if strings.HasPrefix(obj.Key, "resumes/") {
		t.Fatalf("returned key should not carry the bucket prefix: %q", obj.Key)
	}
	if _, ok := api.objects["resumes/"+obj.Key]; !ok {
		t.Fatalf("object not stored under prefix")
	}
	if api.puts[0].ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256 encryption without KMS key")
	}

	rc, err := store.Open(ctx, obj.Key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, _ := io.ReadAll(rc)
	if string(got) != "plain resume text" {
		t.Fatalf("unexpected body %q", got)
	}

	if err := store.Delete(ctx, obj.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, obj.Key); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutUsesKMSKey(t *testing.T) {
	api := newFakeAPI()
	store := NewWithClient(api, "bucket", "", " key-123 ")

	if _, err := store.Put(context.Background(), "a/b.txt", "text/plain", strings.NewReader("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	in := api.puts[0]
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(in.SSEKMSKeyId) != "key-123" {
		t.Fatalf("unexpected encryption settings %v %q", in.ServerSideEncryption, aws.ToString(in.SSEKMSKeyId))
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), "us-east-1", "", "", ""); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}
