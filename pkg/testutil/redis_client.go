package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient keeps sorted sets in memory. It is enough to test
// leaderboard logic without a running redis.
type MockRedisClient struct {
	mutex sync.Mutex
	sets  map[string]map[string]float64
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{sets: make(map[string]map[string]float64)}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.sets[key]
	return ok, nil
}

func (m *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.sets[key] == nil {
		m.sets[key] = make(map[string]float64)
	}

	m.sets[key][z.Member.(string)] = z.Score
	return nil
}

func (m *MockRedisClient) ZIncrBy(ctx context.Context, key string, incr int64, member string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.sets[key] == nil {
		m.sets[key] = make(map[string]float64)
	}

	m.sets[key][member] += float64(incr)
	return nil
}

func (m *MockRedisClient) ZRevRangeWithScores(
	ctx context.Context, key string, offset, limit int,
) ([]redis.Z, error) {
	ranked := m.ranked(key)
	if offset >= len(ranked) {
		return nil, nil
	}

	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}

	return ranked[offset:end], nil
}

func (m *MockRedisClient) ZRevRank(ctx context.Context, key string, member string) (uint64, error) {
	for i, z := range m.ranked(key) {
		if z.Member == member {
			return uint64(i), nil
		}
	}

	return 0, redis.Nil
}

func (m *MockRedisClient) ranked(key string) []redis.Z {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ranked := []redis.Z{}
	for member, score := range m.sets[key] {
		ranked = append(ranked, redis.Z{Member: member, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Member.(string) > ranked[j].Member.(string)
	})

	return ranked
}
