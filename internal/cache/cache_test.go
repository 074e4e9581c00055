package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteProductImages(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	const productID = "prod-1"
	payload := []byte(`{"success":true,"images":[]}`)

	// 1) Cache miss
	got, err := c.GetProductImages(ctx, productID)
	if err != nil {
		t.Fatalf("GetProductImages miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetProductImages miss: got %v; want nil", got)
	}

	// 2) Set + Get
	validUntil := time.Now().Add(5 * time.Minute)
	c.SetProductImages(ctx, productID, payload, validUntil)
	c.SetEtagProductImages(ctx, productID, `"cafebabe"`, validUntil)

	if ttl := mr.TTL(listingKey(productID)); ttl < 4*time.Minute || ttl > 5*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~5m", ttl)
	}
	if ttl := mr.TTL(etagKey(productID)); ttl < 4*time.Minute || ttl > 5*time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~5m", ttl)
	}

	got, err = c.GetProductImages(ctx, productID)
	if err != nil {
		t.Fatalf("GetProductImages hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetProductImages hit = %q; want %q", got, payload)
	}
	etag, err := c.GetEtagProductImages(ctx, productID)
	if err != nil {
		t.Fatalf("GetEtagProductImages hit: %v", err)
	}
	if etag != `"cafebabe"` {
		t.Errorf("etag = %q; want %q", etag, `"cafebabe"`)
	}

	// 3) Delete + miss again
	if err := c.DeleteProductImages(ctx, productID); err != nil {
		t.Fatalf("DeleteProductImages: %v", err)
	}
	if err := c.DeleteEtagProductImages(ctx, productID); err != nil {
		t.Fatalf("DeleteEtagProductImages: %v", err)
	}
	got, err = c.GetProductImages(ctx, productID)
	if err != nil {
		t.Fatalf("GetProductImages after delete: %v", err)
	}
	if got != nil {
		t.Errorf("GetProductImages after delete = %v; want nil", got)
	}
	etag, err = c.GetEtagProductImages(ctx, productID)
	if err != nil {
		t.Fatalf("GetEtagProductImages after delete: %v", err)
	}
	if etag != "" {
		t.Errorf("etag after delete = %q; want empty", etag)
	}
}

func TestGetProductImages_RedisDown(t *testing.T) {
	c, mr := makeTestCache(t)
	mr.Close()

	if _, err := c.GetProductImages(context.Background(), "prod-1"); err == nil {
		t.Fatal("expected an error when redis is unreachable")
	}
	if err := c.DeleteProductImages(context.Background(), "prod-1"); err == nil {
		t.Fatal("expected an error when redis is unreachable")
	}
}
