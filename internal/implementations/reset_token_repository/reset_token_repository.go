package resettokenrepository

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/resettoken"
	"context"
	"errors"

	"github.com/go-redis/redis/v9"
)

const tokenKeyPrefix = "password-reset::token::"
const requestedKeyPrefix = "password-reset::requested::"

type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

// Save writes the email sentinel with NX semantics first, then the token
// entry, both expiring at the token's absolute expiration. The conditional
// sentinel write is what guarantees at most one outstanding token per account
// even under concurrent requests; the two writes are not transactional, which
// is fine because they share the same expiry instant.
func (r *Redis) Save(ctx context.Context, token resettoken.ResetToken) error {
	expiresAt := token.ExpiresAt.Time()

	err := r.redisClient.SetArgs(
		ctx,
		requestedKey(token.Email),
		"",
		redis.SetArgs{Mode: "NX", ExpireAt: expiresAt},
	).Err()
	if errors.Is(err, redis.Nil) {
		return resettoken.ErrAlreadyRequested
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		r.log.Error(ctx, "Could not set reset token sentinel.", logging.Entry("err", err))
		return err
	}

	err = r.redisClient.SetArgs(
		ctx,
		tokenKey(token.Value),
		string(token.Email),
		redis.SetArgs{ExpireAt: expiresAt},
	).Err()
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		r.log.Error(ctx, "Could not save reset token.", logging.Entry("err", err))
		return err
	}
	return nil
}

func (r *Redis) FindEmail(ctx context.Context, value resettoken.Value) (c.Email, error) {
	email, err := r.redisClient.Get(ctx, tokenKey(value)).Result()
	if errors.Is(err, redis.Nil) {
		return "", resettoken.ErrTokenDoesNotExist
	}
	if errors.Is(err, context.Canceled) {
		return "", err
	}
	if err != nil {
		r.log.Error(ctx, "Could not look up reset token.", logging.Entry("err", err))
		return "", err
	}
	return c.NewEmail(email), nil
}

func (r *Redis) IsRequested(ctx context.Context, email c.Email) (bool, error) {
	count, err := r.redisClient.Exists(ctx, requestedKey(email)).Result()
	if errors.Is(err, context.Canceled) {
		return false, err
	}
	if err != nil {
		r.log.Error(ctx, "Could not check reset token sentinel.", logging.Entry("err", err))
		return false, err
	}
	return count > 0, nil
}

func (r *Redis) Delete(ctx context.Context, value resettoken.Value, email c.Email) error {
	err := r.redisClient.Del(ctx, tokenKey(value), requestedKey(email)).Err()
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		r.log.Error(ctx, "Could not delete reset token.", logging.Entry("err", err))
		return err
	}
	return nil
}

func tokenKey(value resettoken.Value) string {
	return tokenKeyPrefix + string(value)
}

func requestedKey(email c.Email) string {
	return requestedKeyPrefix + string(email)
}
