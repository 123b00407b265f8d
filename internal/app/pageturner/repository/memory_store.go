package repository

import (
	"context"
	"math"
	"strings"
	"sync"

	"pageturner/internal/app/pageturner/entity"
)

// MemoryStore - единственный владелец коллекций книг, отзывов и пользователей.
// Коллекции заполняются один раз при создании и живут в памяти до конца
// сессии процесса. Все три коллекции защищены одним мьютексом: добавление
// отзыва и пересчёт агрегатов книги происходят под одной блокировкой,
// читатель не может увидеть одно без другого.
//
// Доступ снаружи - только через представления Books/Reviews/Users,
// возвращающие копии данных.
type MemoryStore struct {
	mu      sync.RWMutex
	books   []entity.Book
	reviews []entity.Review
	users   []entity.User
}

// NewMemoryStore создает хранилище с начальными коллекциями
func NewMemoryStore(books []entity.Book, users []entity.User, reviews []entity.Review) *MemoryStore {
	s := &MemoryStore{
		books:   make([]entity.Book, len(books)),
		users:   make([]entity.User, len(users)),
		reviews: make([]entity.Review, len(reviews)),
	}
	copy(s.books, books)
	copy(s.users, users)
	copy(s.reviews, reviews)
	return s
}

// Books возвращает представление каталога
func (s *MemoryStore) Books() BookRepository {
	return &bookStore{s}
}

// Reviews возвращает представление отзывов
func (s *MemoryStore) Reviews() ReviewRepository {
	return &reviewStore{s}
}

// Users возвращает представление пользователей
func (s *MemoryStore) Users() UserRepository {
	return &userStore{s}
}

// === BookRepository ===

type bookStore struct {
	s *MemoryStore
}

func (r *bookStore) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.books {
		if r.s.books[i].ID == id {
			book := r.s.books[i]
			return &book, nil
		}
	}
	return nil, ErrBookNotFound
}

// GetAll возвращает копию каталога в порядке добавления
func (r *bookStore) GetAll(ctx context.Context) ([]entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	books := make([]entity.Book, len(r.s.books))
	copy(books, r.s.books)
	return books, nil
}

// === ReviewRepository ===

type reviewStore struct {
	s *MemoryStore
}

// Create добавляет отзыв и пересчитывает агрегаты целевой книги
// под одной блокировкой. Если книги нет, отзыв не добавляется.
func (r *reviewStore) Create(ctx context.Context, review *entity.Review) (*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i := range r.s.books {
		if r.s.books[i].ID == review.BookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrBookNotFound
	}

	r.s.reviews = append(r.s.reviews, *review)

	// Среднее по всем отзывам книги, включая только что добавленный
	var sum, count int
	for i := range r.s.reviews {
		if r.s.reviews[i].BookID == review.BookID {
			sum += r.s.reviews[i].Rating
			count++
		}
	}
	avg := float64(sum) / float64(count)

	r.s.books[idx].AverageRating = math.Round(avg*10) / 10
	r.s.books[idx].RatingsCount++

	book := r.s.books[idx]
	return &book, nil
}

// GetByBookID возвращает отзывы книги в порядке добавления
func (r *reviewStore) GetByBookID(ctx context.Context, bookID string) ([]entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reviews := make([]entity.Review, 0)
	for i := range r.s.reviews {
		if r.s.reviews[i].BookID == bookID {
			reviews = append(reviews, r.s.reviews[i])
		}
	}
	return reviews, nil
}

func (r *reviewStore) GetByUserID(ctx context.Context, userID string) ([]entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reviews := make([]entity.Review, 0)
	for i := range r.s.reviews {
		if r.s.reviews[i].UserID == userID {
			reviews = append(reviews, r.s.reviews[i])
		}
	}
	return reviews, nil
}

// === UserRepository ===

type userStore struct {
	s *MemoryStore
}

func (r *userStore) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.users {
		if r.s.users[i].ID == id {
			user := r.s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByEmail ищет пользователя по email без учёта регистра
func (r *userStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.users {
		if strings.EqualFold(r.s.users[i].Email, email) {
			user := r.s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}
