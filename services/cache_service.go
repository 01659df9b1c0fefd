package services

import (
	"context"
	"encoding/json"
	"fmt"
	"homifyhub_server/config"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// CacheService provides Redis caching functionality: hot product reads, user
// lookups, OTP codes, guest sessions and rate limit counters.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// Health pings the cache backend.
func (cs *CacheService) Health(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return cs.client.Set(ctx, key, data, ttl).Err()
}

// getJSON loads a key into dest. A missing key returns false without error.
func (cs *CacheService) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := cs.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// User cache

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (cs *CacheService) SetUserInCache(user *tables.User) error {
	return cs.setJSON(context.Background(), userCacheKey(user.Id), user, 15*time.Minute)
}

func (cs *CacheService) GetUserFromCache(id uuid.UUID) (*tables.User, error) {
	var user tables.User
	found, err := cs.getJSON(context.Background(), userCacheKey(id), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (cs *CacheService) InvalidateUser(id uuid.UUID) error {
	return cs.client.Del(context.Background(), userCacheKey(id)).Err()
}

// Product cache

func productCacheKey(slug string) string {
	return "product:" + slug
}

func (cs *CacheService) SetCachedProduct(product *tables.Product) error {
	return cs.setJSON(context.Background(), productCacheKey(product.Slug), product, cs.config.Cache.ProductCacheTTL)
}

func (cs *CacheService) GetCachedProduct(slug string) (*tables.Product, error) {
	var product tables.Product
	found, err := cs.getJSON(context.Background(), productCacheKey(slug), &product)
	if err != nil || !found {
		return nil, err
	}
	return &product, nil
}

func (cs *CacheService) InvalidateProduct(slug string) error {
	return cs.client.Del(context.Background(), productCacheKey(slug)).Err()
}

// OTP codes

func otpCacheKey(userId uuid.UUID) string {
	return "otp:" + userId.String()
}

// SetOtpCode stores a verification code. A new code overwrites the previous
// one for the same user.
func (cs *CacheService) SetOtpCode(ctx context.Context, userId uuid.UUID, code string, ttl time.Duration) error {
	return cs.client.Set(ctx, otpCacheKey(userId), code, ttl).Err()
}

// GetOtpCode returns the stored code, or empty when none exists. The code is
// left in place so it can be verified again until it expires.
func (cs *CacheService) GetOtpCode(ctx context.Context, userId uuid.UUID) (string, error) {
	code, err := cs.client.Get(ctx, otpCacheKey(userId)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// Guest sessions

func guestCartKey(sessionId string) string {
	return "guest:cart:" + sessionId
}

func guestWishlistKey(sessionId string) string {
	return "guest:wishlist:" + sessionId
}

// GetGuestCart loads a session cart: a map of product id to quantity.
func (cs *CacheService) GetGuestCart(ctx context.Context, sessionId string) (map[string]int, error) {
	cart := map[string]int{}
	if _, err := cs.getJSON(ctx, guestCartKey(sessionId), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (cs *CacheService) SaveGuestCart(ctx context.Context, sessionId string, cart map[string]int) error {
	return cs.setJSON(ctx, guestCartKey(sessionId), cart, cs.config.Cache.GuestSessionTTL)
}

// GetGuestWishlist loads a session wishlist: a set of product ids.
func (cs *CacheService) GetGuestWishlist(ctx context.Context, sessionId string) ([]string, error) {
	var list []string
	if _, err := cs.getJSON(ctx, guestWishlistKey(sessionId), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (cs *CacheService) SaveGuestWishlist(ctx context.Context, sessionId string, list []string) error {
	return cs.setJSON(ctx, guestWishlistKey(sessionId), list, cs.config.Cache.GuestSessionTTL)
}

// Rate limiting

// RateLimitAllow increments the counter for key and reports whether the
// request fits inside the window.
func (cs *CacheService) RateLimitAllow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	redisKey := "ratelimit:" + key

	count, err := cs.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open on connectivity problems so an unreachable cache does
		// not take the API down with it.
		if isTransientCacheError(err) {
			cs.logger.Warn("Rate limit check skipped, cache unreachable", gecho.Field("error", err))
			return true, limit, nil
		}
		return false, 0, err
	}

	// First hit in the window starts the clock.
	if count == 1 {
		if err := cs.client.Expire(ctx, redisKey, window).Err(); err != nil {
			cs.logger.Warn("Failed to set rate limit expiry", gecho.Field("key", redisKey), gecho.Field("error", err))
		}
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return int(count) <= limit, remaining, nil
}

// isTransientCacheError reports whether a cache failure is a connectivity
// problem rather than a logical miss.
func isTransientCacheError(err error) bool {
	if err == nil || err == redis.Nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	for _, candidate := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	} {
		if strings.Contains(errStr, candidate) {
			return true
		}
	}
	return false
}
