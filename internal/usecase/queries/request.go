package queries

import (
	"context"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
	// FindOthers lists requests created by everyone except the given
	// user, newest first.
	FindOthers(ctx context.Context, userID uuid.UUID, page Page) ([]RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, actorID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
	ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, actorID, requestID uuid.UUID) (*RequestView, error) {
	if _, err := q.users.FindByID(ctx, actorID); err != nil {
		return nil, markUserLookup(err, actorID)
	}
	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, markRequestLookup(err, requestID)
	}
	views := []RequestView{*view}
	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error) {
	if _, err := q.users.FindByID(ctx, requesterID); err != nil {
		return nil, markUserLookup(err, requesterID)
	}
	views, err := q.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list own requests")
	}
	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]RequestView, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		return nil, markUserLookup(err, userID)
	}
	views, err := q.requests.FindOthers(ctx, userID, NewPage(from, size))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list foreign requests")
	}
	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) attachAnswers(ctx context.Context, views []RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}
	answers, err := q.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return errs.Wrap(err, "failed to load items answering requests")
	}
	for i := range views {
		as := answers[views[i].ID]
		if as == nil {
			as = []RequestAnswer{}
		}
		views[i].Items = as
	}
	return nil
}
