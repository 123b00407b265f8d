package service

import (
	"context"

	"pageturner/internal/app/pageturner/entity"
)

// Интерфейсы сервисов для обработчиков и тестов

type CatalogServiceInterface interface {
	GetBook(ctx context.Context, id string) (*entity.Book, error)
	ListBooks(ctx context.Context, filters entity.BookFilters) ([]entity.Book, error)
	FeaturedBooks(ctx context.Context) ([]entity.Book, error)
	ListGenres(ctx context.Context) ([]string, error)
}

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error)
	GetReviewsByBook(ctx context.Context, bookID string) ([]entity.Review, error)
	GetUserReviews(ctx context.Context, userID string) ([]entity.Review, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Logout(ctx context.Context)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	Session() *SessionState
}
