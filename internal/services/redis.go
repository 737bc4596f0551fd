package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// OTP send throttle: at most otpSendLimit sends per phone per window.
const (
	otpSendLimit  = 5
	otpSendWindow = 15 * time.Minute
)

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// OTPRateLimiter throttles OTP sends with an INCR + expiry counter per phone.
type OTPRateLimiter struct {
	client *redis.Client
}

func NewOTPRateLimiter(client *redis.Client) *OTPRateLimiter {
	return &OTPRateLimiter{client: client}
}

// Allow reports whether another OTP may be sent to the phone number.
func (l *OTPRateLimiter) Allow(ctx context.Context, phone string) (bool, error) {
	key := fmt.Sprintf("otp:sends:%s", phone)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	// A counter that lost its expiry (crash between INCR and EXPIRE)
	// would throttle the phone forever; repair it whenever missing.
	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if ttl < 0 {
		if err := l.client.Expire(ctx, key, otpSendWindow).Err(); err != nil {
			return false, err
		}
	}

	return count <= otpSendLimit, nil
}
