package repository

import (
	"context"
	"github.com/QuangTung97/poolparty/model"
)

// Event ...
type Event interface {
	InsertEvents(ctx context.Context, events []model.Event) error
	ListEvents(ctx context.Context, campaignID int64, fromSeq uint32, limit uint64) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvents ...
func (e *eventImpl) InsertEvents(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	query := `
INSERT INTO campaign_event (
	campaign_id, seq, type, address, amount, reason,
	from_status, to_status, created_at
) VALUES (
	:campaign_id, :seq, :type, :address, :amount, :reason,
	:from_status, :to_status, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, events)
	return mapError(err)
}

// ListEvents returns events with seq >= fromSeq in order
func (e *eventImpl) ListEvents(
	ctx context.Context, campaignID int64, fromSeq uint32, limit uint64,
) ([]model.Event, error) {
	query := `
SELECT id, campaign_id, seq, type, address, amount, reason,
	from_status, to_status, created_at
FROM campaign_event
WHERE campaign_id = ? AND seq >= ?
ORDER BY seq
LIMIT ?
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, fromSeq, limit)
	return result, mapError(err)
}
