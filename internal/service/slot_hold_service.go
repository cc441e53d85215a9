package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another request already holds the slot
var ErrSlotHeld = errors.New("slot is held by another booking in progress")

// releaseHoldScript deletes a hold only when the caller still owns it, so
// a late release can never drop a hold acquired by someone else. The Redis
// Go client switches to EVALSHA automatically after the first call.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for in-flight slot reservations
	slotHoldKeyPrefix = "booking:hold:"

	// How long a hold survives if the booking write never completes
	slotHoldTTL = 30 * time.Second

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// SlotHoldService serializes concurrent booking attempts on the same
// (offering, date, time) slot through Redis before the database's unique
// index gets the final word.
//
// Flow: Acquire -> insert booking row -> Release (or let the TTL expire).
// A failed insert must Release so the slot opens up immediately instead of
// after the TTL.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger) *SlotHoldService {
	return &SlotHoldService{
		redisClient: redisClient,
		log:         log,
	}
}

// Acquire takes the hold for one slot on behalf of ownerID. Returns
// ErrSlotHeld when a concurrent request got there first.
func (s *SlotHoldService) Acquire(ctx context.Context, offeringID uuid.UUID, date time.Time, startTime string, ownerID uuid.UUID) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	key := slotHoldKey(offeringID, date, startTime)
	acquired, err := s.redisClient.SetNX(opCtx, key, ownerID.String(), slotHoldTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire slot hold: %w", err)
	}
	if !acquired {
		return ErrSlotHeld
	}

	return nil
}

// Release frees a hold previously acquired by ownerID. Safe to call after
// the TTL expired; releasing a hold now owned by someone else is a no-op.
func (s *SlotHoldService) Release(ctx context.Context, offeringID uuid.UUID, date time.Time, startTime string, ownerID uuid.UUID) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	key := slotHoldKey(offeringID, date, startTime)
	if err := releaseHoldScript.Run(opCtx, s.redisClient, []string{key}, ownerID.String()).Err(); err != nil {
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
		return err
	}

	return nil
}

func slotHoldKey(offeringID uuid.UUID, date time.Time, startTime string) string {
	return fmt.Sprintf("%s%s:%s:%s", slotHoldKeyPrefix, offeringID.String(), date.Format("2006-01-02"), startTime)
}
