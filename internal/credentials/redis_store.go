package credentials

import (
	"crypto/tls"
	"fmt"

	"github.com/go-redis/redis"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const redisEnvconfigPrefix = "REDIS"

// redisConfig represents common configuration options for a Redis connection
type redisConfig struct {
	Host      string `envconfig:"HOST" required:"true"`
	Port      int    `envconfig:"PORT" default:"6379"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB"`
	EnableTLS bool   `envconfig:"ENABLE_TLS"`
	Prefix    string `envconfig:"PREFIX" default:"burgerctl"`
}

// redisStore keeps credentials in Redis. It exists for shared/kiosk
// deployments where several client hosts present one storefront identity and
// a home-directory file would strand the refresh token on a single machine.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a Store backed by a Redis database specified by
// REDIS_* environment variables.
func NewRedisStore() (Store, error) {
	c := redisConfig{}
	if err := envconfig.Process(redisEnvconfigPrefix, &c); err != nil {
		return nil, errors.Wrap(
			err,
			"error getting redis configuration from environment",
		)
	}
	redisOpts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Password: c.Password,
		DB:       c.DB,
	}
	if c.EnableTLS {
		redisOpts.TLSConfig = &tls.Config{
			ServerName: c.Host,
		}
	}
	return &redisStore{
		client: redis.NewClient(redisOpts),
		prefix: c.Prefix,
	}, nil
}

func (r *redisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

func (r *redisStore) Get(key string) (string, error) {
	value, err := r.client.Get(r.key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "error retrieving %q from redis", key)
	}
	return value, nil
}

func (r *redisStore) Set(key, value string) error {
	if err := r.client.Set(r.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "error storing %q in redis", key)
	}
	return nil
}

func (r *redisStore) Remove(key string) error {
	if err := r.client.Del(r.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "error removing %q from redis", key)
	}
	return nil
}
