package readingcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

// ValkeyStore caches day readings as JSON strings in Valkey.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore builds a store whose keys are namespaced by prefix and the
// calendar anchor, so readings computed under another anchor never collide.
func NewValkeyStore(client valkey.Client, prefix string, anchor maya.Anchor) *ValkeyStore {
	return &ValkeyStore{client: client, prefix: KeyPrefix(prefix, anchor)}
}

// KeyPrefix renders "<prefix>:<anchor date>:<anchor kin>".
func KeyPrefix(prefix string, anchor maya.Anchor) string {
	if prefix == "" {
		prefix = "maya"
	}
	return fmt.Sprintf("%s:%s:%d", prefix, anchor.Date, anchor.Kin)
}

func (s *ValkeyStore) Get(ctx context.Context, date caldate.Date) (maya.DayReading, bool, error) {
	cmd := s.client.B().Get().Key(s.key(date)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return maya.DayReading{}, false, nil
		}
		return maya.DayReading{}, false, err
	}
	var reading maya.DayReading
	if err := json.Unmarshal([]byte(payload), &reading); err != nil {
		return maya.DayReading{}, false, err
	}
	return reading, true, nil
}

func (s *ValkeyStore) Put(ctx context.Context, reading maya.DayReading, ttl time.Duration) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(reading.Date)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(date caldate.Date) string {
	return s.prefix + ":" + date.String()
}

var _ maya.ReadingCache = (*ValkeyStore)(nil)
