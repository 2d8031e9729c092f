package service

import (
	"context"
)

// ReceiptStorage stores rendered order receipts for fulfillment staff.
type ReceiptStorage interface {
	// Put writes data under key, replacing any previous object.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Close releases the underlying bucket.
	Close() error
}
