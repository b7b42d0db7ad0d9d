package thresholds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	v1 "github.com/aevon-lab/hashsplit/internal/api/v1"
	"github.com/aevon-lab/hashsplit/internal/core/partition"
	"github.com/aevon-lab/hashsplit/internal/core/storage"
	"github.com/aevon-lab/hashsplit/internal/core/storage/postgres"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const coveragePrecision = 12

var (
	// ErrInvalidRequest marks request validation errors that should return HTTP 400.
	ErrInvalidRequest = errors.New("invalid threshold request")

	// ErrPartitionNotFound is returned for a partition index outside [0, groups).
	ErrPartitionNotFound = errors.New("partition not found")

	// ErrStoreUnavailable is returned by key scans when no database is configured.
	ErrStoreUnavailable = errors.New("range store not configured")
)

// Options carries the configured defaults and limits.
type Options struct {
	DefaultGroups  int
	MaxGroups      int
	CacheByDefault bool
	FoldCase       bool
	DefaultLimit   int
	MaxLimit       int
}

// Service serves threshold sets and the range queries built from them.
type Service struct {
	opts  Options
	cache partition.Cache
	store storage.RangeStore // nil when no database is configured
	fill  singleflight.Group // Dedupe concurrent computation of the same groups
}

// NewService creates a new threshold service. store may be nil.
func NewService(store storage.RangeStore, cache partition.Cache, opts Options) *Service {
	if opts.DefaultGroups <= 0 {
		opts.DefaultGroups = partition.DefaultGroups
	}
	if opts.MaxGroups <= 0 {
		opts.MaxGroups = opts.DefaultGroups
	}
	if cache == nil {
		cache = partition.NewMemoryCache()
	}

	return &Service{
		opts:  opts,
		cache: cache,
		store: store,
	}
}

// Thresholds returns the threshold set for the requested partition count.
func (s *Service) Thresholds(ctx context.Context, req ThresholdRequest) (*v1.ThresholdSet, error) {
	groups, err := s.resolveGroups(req.Groups)
	if err != nil {
		return nil, err
	}

	partitions, cached, err := s.load(groups, s.resolveCache(req.Cache))
	if err != nil {
		return nil, err
	}

	space := decimal.NewFromBigInt(partition.SpaceSize(), 0)
	ranges := make([]v1.PartitionRange, len(partitions))
	for i, p := range partitions {
		size, err := p.Size()
		if err != nil {
			return nil, fmt.Errorf("size of partition %d: %w", i, err)
		}
		ranges[i] = v1.PartitionRange{
			Index:    i,
			Min:      p.Min,
			Max:      p.Max,
			Coverage: decimal.NewFromBigInt(size, 0).DivRound(space, coveragePrecision),
		}
	}

	return &v1.ThresholdSet{
		Groups:     groups,
		Cached:     cached,
		Partitions: ranges,
	}, nil
}

// Queries renders one parameterized SELECT per partition. No database is needed.
func (s *Service) Queries(ctx context.Context, req RangeRequest) (*QueryResponse, error) {
	groups, err := s.resolveGroups(req.Groups)
	if err != nil {
		return nil, err
	}
	q, err := s.rangeQuery(req)
	if err != nil {
		return nil, err
	}

	partitions, _, err := s.load(groups, s.resolveCache(req.Cache))
	if err != nil {
		return nil, err
	}

	statements := make([]RangeStatement, len(partitions))
	for i, p := range partitions {
		sqlText, args, err := postgres.BuildRangeQuery(q, p)
		if err != nil {
			return nil, invalidRequestf("%v", err)
		}
		statements[i] = RangeStatement{
			Index: i,
			Min:   p.Min,
			Max:   p.Max,
			SQL:   sqlText,
			Args:  args,
		}
	}

	return &QueryResponse{
		Groups:     groups,
		Table:      q.Table,
		Statements: statements,
	}, nil
}

// Keys returns the key column values of rows whose hash falls in partition index.
func (s *Service) Keys(ctx context.Context, index int, req RangeRequest) (*KeysResponse, error) {
	groups, err := s.resolveGroups(req.Groups)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= groups {
		return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrPartitionNotFound, index, groups)
	}
	q, err := s.rangeQuery(req)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	partitions, _, err := s.load(groups, s.resolveCache(req.Cache))
	if err != nil {
		return nil, err
	}
	p := partitions[index]

	keys, err := s.store.ScanRange(ctx, q, p)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidRangeQuery) {
			return nil, invalidRequestf("%v", err)
		}
		return nil, fmt.Errorf("scan partition %d: %w", index, err)
	}

	return &KeysResponse{
		Groups: groups,
		Index:  index,
		Min:    p.Min,
		Max:    p.Max,
		Limit:  q.Limit,
		Keys:   keys,
	}, nil
}

// Ping reports range store health. A service without a store is healthy.
func (s *Service) Ping(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Ping(ctx)
}

// load returns the partitions for groups and whether they came from a cache
// entry stored by an earlier call. Callers that joined an in-flight fill
// share its result but report false.
func (s *Service) load(groups int, useCache bool) ([]partition.Partition, bool, error) {
	if !useCache {
		partitions, err := partition.Thresholds(groups)
		return partitions, false, err
	}

	if partitions, ok := s.cache.Get(groups); ok {
		return partitions, true, nil
	}

	result, err, _ := s.fill.Do(strconv.Itoa(groups), func() (interface{}, error) {
		slog.Debug("Computing thresholds", "groups", groups)
		return partition.CachedThresholds(groups, s.cache)
	})
	if err != nil {
		return nil, false, err
	}
	return result.([]partition.Partition), false, nil
}

func (s *Service) resolveGroups(groups *int) (int, error) {
	if groups == nil {
		return s.opts.DefaultGroups, nil
	}
	if *groups < 1 || *groups > s.opts.MaxGroups {
		return 0, invalidRequestf("groups must be between 1 and %d, got %d", s.opts.MaxGroups, *groups)
	}
	return *groups, nil
}

func (s *Service) resolveCache(cache *bool) bool {
	if cache == nil {
		return s.opts.CacheByDefault
	}
	return *cache
}

func (s *Service) rangeQuery(req RangeRequest) (storage.RangeQuery, error) {
	q := storage.RangeQuery{
		Table:      req.Table,
		HashColumn: req.HashColumn,
		KeyColumn:  req.KeyColumn,
		FoldCase:   s.opts.FoldCase,
		Limit:      s.opts.DefaultLimit,
	}
	if req.FoldCase != nil {
		q.FoldCase = *req.FoldCase
	}
	if req.Limit != nil {
		if *req.Limit < 1 || (s.opts.MaxLimit > 0 && *req.Limit > s.opts.MaxLimit) {
			return q, invalidRequestf("limit must be between 1 and %d, got %d", s.opts.MaxLimit, *req.Limit)
		}
		q.Limit = *req.Limit
	}
	if err := q.Validate(); err != nil {
		return q, invalidRequestf("%v", err)
	}
	return q, nil
}

func invalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
