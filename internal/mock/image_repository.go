package mock

import (
	"context"
	"time"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

// MockImageRepo implements repository operations for tests.
type MockImageRepo struct {
	ImageRecord *model.ProductImage
	ListOut     []model.ProductImage
	MaxPosOut   int

	GetErr        error
	CreateErr     error
	ListErr       error
	MaxPosErr     error
	ReorderErr    error
	DeleteErr     error
	MarkErr       error
	UnverifiedErr error
	UnverifiedOut []uuid.UUID

	GetCalled        bool
	Created          []*model.ProductImage
	ListCalled       bool
	MaxPosCalled     bool
	ReorderCalled    bool
	ReorderedIDs     []uuid.UUID
	DeleteCalled     bool
	DeletedID        uuid.UUID
	MarkCalled       bool
	MarkedID         uuid.UUID
	UnverifiedCalled bool
	UnverifiedSince  time.Time
}

func (m *MockImageRepo) Create(ctx context.Context, img *model.ProductImage) error {
	m.Created = append(m.Created, img)
	return m.CreateErr
}

func (m *MockImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductImage, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ImageRecord, nil
}

func (m *MockImageRepo) ListByProduct(ctx context.Context, productID string) ([]model.ProductImage, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockImageRepo) MaxPosition(ctx context.Context, productID string) (int, error) {
	m.MaxPosCalled = true
	if m.MaxPosErr != nil {
		return 0, m.MaxPosErr
	}
	return m.MaxPosOut, nil
}

func (m *MockImageRepo) Reorder(ctx context.Context, productID string, ids []uuid.UUID) error {
	m.ReorderCalled = true
	m.ReorderedIDs = ids
	return m.ReorderErr
}

func (m *MockImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockImageRepo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	m.MarkCalled = true
	m.MarkedID = id
	return m.MarkErr
}

func (m *MockImageRepo) ListUnverifiedBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	m.UnverifiedCalled = true
	m.UnverifiedSince = before
	if m.UnverifiedErr != nil {
		return nil, m.UnverifiedErr
	}
	return m.UnverifiedOut, nil
}
