//go:build unit

package commands_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.UserSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.UserSnapshot), args.Error(1)
}

type MockItemReader struct {
	mock.Mock
}

func (m *MockItemReader) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ItemSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.ItemSnapshot), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.BookingSnapshot), args.Error(1)
}

func (m *MockBookingReader) CountCompletedApproved(ctx context.Context, dbtx db.DBTX, bookerID, itemID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, dbtx, bookerID, itemID, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockRequestReader struct {
	mock.Mock
}

func (m *MockRequestReader) Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	args := m.Called(ctx, dbtx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	args := m.Called(ctx, dbtx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, dbtx, id)
	return args.Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	args := m.Called(ctx, dbtx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	args := m.Called(ctx, dbtx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, dbtx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	args := m.Called(ctx, dbtx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	args := m.Called(ctx, dbtx, id, status)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) error {
	args := m.Called(ctx, dbtx, c)
	return args.Error(0)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
