package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeGetObject struct {
	bucket string
	key    string
	body   string
	err    error
}

func (f *fakeGetObject) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "exports/risk.csv", want: "exports/risk.csv"},
		{name: "simple prefix", prefix: "root", key: "risk.csv", want: "root/risk.csv"},
		{name: "prefix trailing slash", prefix: "root/", key: "risk.csv", want: "root/risk.csv"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/risk.csv", want: "root/risk.csv"},
		{name: "empty key", prefix: "root", key: "", want: "root"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestOpenFetchesPrefixedKey(t *testing.T) {
	fake := &fakeGetObject{body: "customer_id\n"}
	store := newWithClient(fake, "risk-exports", "/churn/")

	rc, err := store.Open(context.Background(), "daily.csv")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	if fake.bucket != "risk-exports" || fake.key != "churn/daily.csv" {
		t.Fatalf("unexpected request bucket=%q key=%q", fake.bucket, fake.key)
	}
	body, _ := io.ReadAll(rc)
	if string(body) != "customer_id\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestOpenWrapsClientError(t *testing.T) {
	boom := errors.New("access denied")
	store := newWithClient(&fakeGetObject{err: boom}, "risk-exports", "")
	if _, err := store.Open(context.Background(), "daily.csv"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}
