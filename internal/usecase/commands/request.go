package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (uuid.UUID, error)
}

type requestCommandsImpl struct {
	pool     *pgxpool.Pool
	requests RequestRepository
	users    UserReader
	clk      clock.Clock
}

func NewRequestCommands(pool *pgxpool.Pool, requests RequestRepository, users UserReader, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{pool: pool, requests: requests, users: users, clk: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (uuid.UUID, error) {
	if _, err := c.users.FindByID(ctx, c.pool, requesterID); err != nil {
		return uuid.Nil, markUserLookup(err, requesterID)
	}
	r, err := request.NewItemRequest(description, requesterID, c.clk.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.requests.Create(ctx, c.pool, r); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create item request")
	}
	return r.ID(), nil
}
