package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"pageturner/internal/app/pageturner/entity"
)

// SessionRepositoryTestSuite тестовый suite для Redis repository
type SessionRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      SessionRepository
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}

func (s *SessionRepositoryTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	s.repo = NewRedisSessionRepository(s.client)
}

func (s *SessionRepositoryTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
}

func (s *SessionRepositoryTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

func (s *SessionRepositoryTestSuite) TestSaveAndGet() {
	ctx := context.Background()
	user := &entity.User{
		ID:    "user-1",
		Name:  "Emma Thompson",
		Email: "emma@example.com",
	}

	err := s.repo.Save(ctx, user)
	s.NoError(err)

	restored, err := s.repo.Get(ctx)
	s.NoError(err)
	s.Equal("user-1", restored.ID)
	s.Equal("emma@example.com", restored.Email)
}

func (s *SessionRepositoryTestSuite) TestGet_NoSession() {
	ctx := context.Background()

	restored, err := s.repo.Get(ctx)

	s.ErrorIs(err, ErrNoSession)
	s.Nil(restored)
}

func (s *SessionRepositoryTestSuite) TestGet_MalformedRecord() {
	ctx := context.Background()
	s.miniRedis.Set("session:current_user", "{not json")

	restored, err := s.repo.Get(ctx)

	s.ErrorIs(err, ErrMalformedSession)
	s.Nil(restored)
}

func (s *SessionRepositoryTestSuite) TestGet_EmptyUserRecord() {
	ctx := context.Background()
	// Валидный JSON, но без идентификатора - считается повреждённым
	s.miniRedis.Set("session:current_user", "{}")

	restored, err := s.repo.Get(ctx)

	s.ErrorIs(err, ErrMalformedSession)
	s.Nil(restored)
}

func (s *SessionRepositoryTestSuite) TestDelete_RemovesRecord() {
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Name: "Emma", Email: "emma@example.com"}

	s.NoError(s.repo.Save(ctx, user))
	s.NoError(s.repo.Delete(ctx))

	_, err := s.repo.Get(ctx)
	s.ErrorIs(err, ErrNoSession)
}

func (s *SessionRepositoryTestSuite) TestDelete_NoSessionIsNotAnError() {
	ctx := context.Background()

	s.NoError(s.repo.Delete(ctx))
}
