package ledgerRepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-redis/redis/v8"

	"jalusi/utils"
)

const ledgerKeyPrefix = "ledger:"

// redisLedgerRepo keeps one Redis set per date. SADD reports how many members
// it added, so a zero reply means another client already holds the slot.
type redisLedgerRepo struct {
	client *redis.Client
}

func NewRedisLedgerRepo(client *redis.Client) LedgerRepository {
	return &redisLedgerRepo{client: client}
}

func ledgerKey(date string) string {
	return ledgerKeyPrefix + date
}

func (r *redisLedgerRepo) IsOccupied(ctx context.Context, date, time string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, ledgerKey(date), time).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check slot %s %s: %w", date, time, err)
	}
	return ok, nil
}

func (r *redisLedgerRepo) OccupiedSlotsFor(ctx context.Context, date string) ([]string, error) {
	times, err := r.client.SMembers(ctx, ledgerKey(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load slots for %s: %w", date, err)
	}
	slices.Sort(times)
	return times, nil
}

func (r *redisLedgerRepo) Reserve(ctx context.Context, date, time string) error {
	added, err := r.client.SAdd(ctx, ledgerKey(date), time).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve slot %s %s: %w", date, time, err)
	}
	if added == 0 {
		return utils.NewAlreadyOccupiedError(date, time)
	}
	return nil
}

func (r *redisLedgerRepo) Release(ctx context.Context, date, time string) error {
	if err := r.client.SRem(ctx, ledgerKey(date), time).Err(); err != nil {
		return fmt.Errorf("failed to release slot %s %s: %w", date, time, err)
	}
	return nil
}
