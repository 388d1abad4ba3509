package redis

import (
	"context"
	"slices"

	redis "github.com/redis/go-redis/v9"
)

type published struct {
	channel string
	message []byte
}

// fakeConn keeps sets in memory and records published messages.
type fakeConn struct {
	sets      map[string][]string
	published []published
	err       error
	closed    bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{sets: map[string][]string{}}
}

func (f *fakeConn) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	var added int64
	for _, m := range members {
		s := m.(string)
		if !slices.Contains(f.sets[key], s) {
			f.sets[key] = append(f.sets[key], s)
			added++
		}
	}
	cmd.SetVal(added)
	return cmd
}

func (f *fakeConn) SRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	var removed int64
	for _, m := range members {
		s := m.(string)
		if i := slices.Index(f.sets[key], s); i >= 0 {
			f.sets[key] = slices.Delete(f.sets[key], i, i+1)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

func (f *fakeConn) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	cmd := redis.NewStringSliceCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	cmd.SetVal(slices.Clone(f.sets[key]))
	return cmd
}

func (f *fakeConn) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	f.published = append(f.published, published{channel: channel, message: message.([]byte)})
	cmd.SetVal(1)
	return cmd
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}
