package storage

import (
	"context"
	"time"
)

// Object 儲存的工件內容與中繼資料
type Object struct {
	Body        []byte
	ContentType string
}

// BlobStore 工件儲存介面：寫入物件並發放有時效的下載連結
type BlobStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	GetObject(ctx context.Context, key string) (*Object, error)
	SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
