package storage

import (
	"context"
	"fmt"
	"time"

	apperrors "event-ticketing/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore 以 Redis hash 保存工件內容與 content type，
// 下載連結由 URLSigner 簽名、下載路由驗證後回源
type RedisBlobStore struct {
	client *redis.Client
	signer *URLSigner
}

func NewRedisBlobStore(client *redis.Client, signer *URLSigner) BlobStore {
	return &RedisBlobStore{
		client: client,
		signer: signer,
	}
}

// 工件 key
func (s *RedisBlobStore) getArtifactKey(key string) string {
	return fmt.Sprintf("artifact:%s", key)
}

func (s *RedisBlobStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	return s.client.HSet(ctx, s.getArtifactKey(key), map[string]interface{}{
		"body":         body,
		"content_type": contentType,
	}).Err()
}

func (s *RedisBlobStore) GetObject(ctx context.Context, key string) (*Object, error) {
	result, err := s.client.HGetAll(ctx, s.getArtifactKey(key)).Result()
	if err != nil {
		return nil, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return nil, apperrors.ErrArtifactNotFound
	}

	return &Object{
		Body:        []byte(result["body"]),
		ContentType: result["content_type"],
	}, nil
}

func (s *RedisBlobStore) SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	exists, err := s.client.Exists(ctx, s.getArtifactKey(key)).Result()
	if err != nil {
		return "", err
	}
	if exists == 0 {
		return "", apperrors.ErrArtifactNotFound
	}

	return s.signer.SignedURL(key, expiresIn), nil
}

func (s *RedisBlobStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.getArtifactKey(key)).Err()
}
