package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DistributedLock 多实例部署时保证同一任务同一时刻只有一个实例执行
type DistributedLock interface {
	// Acquire 尝试获取锁，返回是否成功
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release 释放锁，只会删除自己持有的锁
	Release(ctx context.Context, key string) error
}

// RedisLock 基于 Redis SET NX 的实现，value 为实例 token
type RedisLock struct {
	client *redis.Client
	token  string
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{client: client, token: uuid.New().String()}
}

func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, "lock:"+key, l.token, ttl).Result()
}

// Release 先比对 token 再删除；GET 与 DEL 之间锁过期被他人抢占的窗口可以接受，任务本身是只读的
func (l *RedisLock) Release(ctx context.Context, key string) error {
	owner, err := l.client.Get(ctx, "lock:"+key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != l.token {
		return nil
	}
	return l.client.Del(ctx, "lock:"+key).Err()
}
