package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	t.Run("test environment bypass", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("development environment bypass", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("nil redis errors in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.Error(t, err)
		assert.False(t, allowed)
	})

	t.Run("counts against the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(ctx, rdb, "otp", "user:42", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := CheckRateLimit(ctx, rdb, "otp", "user:42", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		// A different identity is not throttled
		allowed, err = CheckRateLimit(ctx, rdb, "otp", "user:43", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		ctx := context.Background()
		allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:9.9.9.9", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = CheckRateLimit(ctx, rdb, "login", "ip:9.9.9.9", 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		mr.FastForward(2 * time.Minute)

		allowed, err = CheckRateLimit(ctx, rdb, "login", "ip:9.9.9.9", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("bypass in test mode", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "test")
		app.Get("/test", RateLimit(nil, 1, time.Minute), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("fail-open with nil redis in production", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "production")
		app.Get("/test", RateLimit(nil, 1, time.Minute), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("fail-closed with nil redis in production", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "production")
		app.Get("/sensitive", RateLimitWithPolicy(nil, 1, time.Minute, FailClosed), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/sensitive", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("blocks once over the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		app := fiber.New()
		app.Get("/login", RateLimit(rdb, 2, time.Minute, "login"), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			_ = resp.Body.Close()
		}

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		_ = resp.Body.Close()
	})
}
