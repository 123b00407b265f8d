package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/pkg/metrics"
)

const serviceName = "pageturner"

// Единственный ключ с сериализованным текущим пользователем.
// Пишется при входе, удаляется при выходе, читается один раз на старте.
const sessionKey = "session:current_user"

type redisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository создает Redis репозиторий записи сессии
func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{client: client}
}

// Save сохраняет сериализованного пользователя под ключом сессии
func (r *redisSessionRepository) Save(ctx context.Context, user *entity.User) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpSet)
	defer timer.ObserveDuration()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	// Без TTL: запись живёт до явного logout
	if err := r.client.Set(ctx, sessionKey, data, 0).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get читает сохранённую сессию.
// Возвращает ErrNoSession если записи нет и ErrMalformedSession
// если запись не парсится.
func (r *redisSessionRepository) Get(ctx context.Context) (*entity.User, error) {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpGet)
	defer timer.ObserveDuration()

	data, err := r.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSession
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, ErrMalformedSession
	}
	if user.ID == "" {
		return nil, ErrMalformedSession
	}

	return &user, nil
}

// Delete удаляет запись сессии; отсутствие записи не считается ошибкой
func (r *redisSessionRepository) Delete(ctx context.Context) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpDel)
	defer timer.ObserveDuration()

	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
