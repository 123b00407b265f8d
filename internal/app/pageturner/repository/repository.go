package repository

import (
	"context"
	"errors"

	"pageturner/internal/app/pageturner/entity"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrNoSession - сохранённой сессии нет
	ErrNoSession = errors.New("no stored session")
	// ErrMalformedSession - сохранённая сессия не парсится и подлежит удалению
	ErrMalformedSession = errors.New("malformed stored session")
)

// BookRepository определяет методы чтения каталога
type BookRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	GetAll(ctx context.Context) ([]entity.Book, error)
}

// ReviewRepository определяет методы для работы с отзывами
// Create добавляет отзыв и за одно обращение пересчитывает агрегаты книги;
// возвращает книгу с обновлёнными average_rating и ratings_count
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) (*entity.Book, error)
	GetByBookID(ctx context.Context, bookID string) ([]entity.Review, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Review, error)
}

// UserRepository определяет методы чтения пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// SessionRepository хранит единственную запись сессии текущего пользователя
type SessionRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Get(ctx context.Context) (*entity.User, error)
	Delete(ctx context.Context) error
}
