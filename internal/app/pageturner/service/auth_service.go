package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/repository"
	"pageturner/internal/app/pageturner/util"
	"pageturner/pkg/logger"
	"pageturner/pkg/metrics"
)

// AuthService обрабатывает вход, выход и восстановление сессии.
// Учётные данные демонстрационные: при совпадении email подходит
// любой пароль, реальной проверки пароля нет.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtManager  *util.JWTManager
	session     *SessionState

	// Искусственная задержка, имитирующая сетевой вызов
	loginDelay time.Duration
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtManager *util.JWTManager,
	session *SessionState,
	loginDelay time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		session:     session,
		loginDelay:  loginDelay,
	}
}

// Login выполняет вход пользователя.
// На время операции поднимается флаг загрузки, чтобы клиент мог
// заблокировать форму. Ошибка и возвращается вызывающему,
// и остаётся в состоянии сессии.
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	s.session.setLoading(true)
	s.session.setError("")
	defer s.session.setLoading(false)

	if s.loginDelay > 0 {
		select {
		case <-time.After(s.loginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.session.setError(ErrInvalidCredentials.Error())
			metrics.AuthLogins.WithLabelValues("failed").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Пароль не проверяется - демо-режим

	s.session.setCurrentUser(user)

	// Сохраняем сессию; сбой записи не отменяет вход
	if err := s.sessionRepo.Save(ctx, user); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist session")
	}

	token, err := s.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	metrics.AuthLogins.WithLabelValues("success").Inc()
	metrics.SessionsActive.Set(1)

	logger.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("User logged in")

	return &entity.LoginResponse{
		User:        *user,
		AccessToken: token,
		ExpiresIn:   int64(s.jwtManager.GetAccessTokenDuration().Seconds()),
	}, nil
}

// Logout завершает сессию. Всегда успешен: сбой удаления
// сохранённой записи логируется и не мешает выходу.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.setCurrentUser(nil)
	s.session.setError("")

	if err := s.sessionRepo.Delete(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to remove persisted session")
	}

	metrics.SessionsActive.Set(0)

	logger.Info().Msg("User logged out")
}

// RestoreSession восстанавливает сессию при старте.
// Повреждённая запись удаляется и трактуется как отсутствие сессии,
// старт из-за неё не падает.
func (s *AuthService) RestoreSession(ctx context.Context) {
	user, err := s.sessionRepo.Get(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSession):
			// Сессии нет - обычный холодный старт
		case errors.Is(err, repository.ErrMalformedSession):
			logger.Warn().Msg("Discarding malformed persisted session")
			if delErr := s.sessionRepo.Delete(ctx); delErr != nil {
				logger.Warn().Err(delErr).Msg("Failed to delete malformed session")
			}
		default:
			logger.Warn().Err(err).Msg("Failed to read persisted session")
		}
		return
	}

	s.session.setCurrentUser(user)
	metrics.SessionsActive.Set(1)

	logger.Info().
		Str("user_id", user.ID).
		Msg("Session restored")
}

// GetUser получает пользователя по ID
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Session возвращает состояние сессии для чтения обработчиками
func (s *AuthService) Session() *SessionState {
	return s.session
}
