package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/models"
)

// ipBlockRepository is the SQL implementation of [IPBlockRepository].
type ipBlockRepository struct {
	sqlRepository
}

func scanIPBlock(row rowScanner) (models.IPBlock, error) {
	var block models.IPBlock
	var lastAttempt sql.NullTime

	err := row.Scan(&block.ID, &block.IPAddress, &block.FailedAttempts, &block.IsBlocked,
		&lastAttempt, &block.CreatedAt)
	if err != nil {
		return models.IPBlock{}, err
	}
	block.LastAttempt = timePtr(lastAttempt)

	return block, nil
}

// InsertIfAbsent inserts the record with ON CONFLICT DO NOTHING. When a
// concurrent transaction already created the address, no row is returned
// and [ErrIPBlockAlreadyExists] is reported so the caller can lock and
// update the existing row instead.
func (r *ipBlockRepository) InsertIfAbsent(ctx context.Context, block models.IPBlock) (models.IPBlock, error) {
	if block.CreatedAt.IsZero() {
		block.CreatedAt = nowUTC()
	}

	query, args, err := r.q.insertIPBlockIfAbsent(block)
	err = r.queryRow(ctx, "ipBlockRepository.InsertIfAbsent", query, args, err, ErrIPBlockAlreadyExists, &block.ID)
	if err != nil {
		return models.IPBlock{}, r.constraintError(err, ErrIPBlockAlreadyExists, nil)
	}

	return block, nil
}

func (r *ipBlockRepository) FindByID(ctx context.Context, id int64) (models.IPBlock, error) {
	query, args, err := r.q.selectIPBlock(sq.Eq{"id": id}, false)
	return queryOne(ctx, r.sqlRepository, "ipBlockRepository.FindByID", query, args, err, ErrIPBlockNotFound, scanIPBlock)
}

func (r *ipBlockRepository) LockByID(ctx context.Context, id int64) (models.IPBlock, error) {
	query, args, err := r.q.selectIPBlock(sq.Eq{"id": id}, true)
	return queryOne(ctx, r.sqlRepository, "ipBlockRepository.LockByID", query, args, err, ErrIPBlockNotFound, scanIPBlock)
}

func (r *ipBlockRepository) LockByAddress(ctx context.Context, ip string) (models.IPBlock, error) {
	query, args, err := r.q.selectIPBlock(sq.Eq{"ip_address": ip}, true)
	return queryOne(ctx, r.sqlRepository, "ipBlockRepository.LockByAddress", query, args, err, ErrIPBlockNotFound, scanIPBlock)
}

func (r *ipBlockRepository) List(ctx context.Context) ([]models.IPBlock, error) {
	query, args, err := r.q.selectIPBlocks()
	return queryAll(ctx, r.sqlRepository, "ipBlockRepository.List", query, args, err, scanIPBlock)
}

func (r *ipBlockRepository) UpdateGuard(ctx context.Context, block models.IPBlock) error {
	query, args, err := r.q.updateIPBlockGuard(block)
	return r.execOne(ctx, "ipBlockRepository.UpdateGuard", query, args, err, ErrIPBlockNotFound)
}
