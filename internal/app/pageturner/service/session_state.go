package service

import (
	"sync"

	"pageturner/internal/app/pageturner/entity"
)

// SessionState - разделяемое состояние сессии: текущий пользователь,
// флаг загрузки и последняя ошибка. Читается обработчиками напрямую,
// мутируется только сервисами auth и reviews.
type SessionState struct {
	mu          sync.RWMutex
	currentUser *entity.User
	isLoading   bool
	lastError   string
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// CurrentUser возвращает копию текущего пользователя или nil
func (s *SessionState) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	user := *s.currentUser
	return &user
}

func (s *SessionState) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *SessionState) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *SessionState) setCurrentUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.currentUser = nil
		return
	}
	u := *user
	s.currentUser = &u
}

func (s *SessionState) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

func (s *SessionState) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}
