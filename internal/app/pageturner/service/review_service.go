package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/infrastructure"
	"pageturner/internal/app/pageturner/repository"
	"pageturner/pkg/logger"
	"pageturner/pkg/metrics"
)

// ReviewService обрабатывает бизнес-логику отзывов
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	session    *SessionState
	publisher  infrastructure.MessagePublisher
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	session *SessionState,
	publisher infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		session:    session,
		publisher:  publisher,
	}
}

// CreateReview создает новый отзыв от имени текущего пользователя.
// 1. Требует активную сессию, иначе ничего не мутирует
// 2. Добавление отзыва и пересчёт агрегатов книги атомарны на уровне хранилища
// 3. Отправляет событие REVIEW_CREATED в Kafka
//
// Диапазон оценки и длина текста проверены на уровне DTO,
// сервис повторную проверку не делает.
func (s *ReviewService) CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error) {
	user := s.session.CurrentUser()
	if user == nil {
		s.session.setError(ErrUnauthenticated.Error())
		return nil, ErrUnauthenticated
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.NewString(),
		BookID:    req.BookID,
		UserID:    user.ID,
		User:      *user, // снимок автора на момент создания
		Rating:    req.Rating,
		Text:      req.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	book, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.session.setError("")

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsRating.Observe(float64(review.Rating))

	// Отправляем событие REVIEW_CREATED в Kafka.
	// Отзыв уже создан, проблемы с Kafka не критичны
	event := entity.ReviewEvent{
		EventType: "REVIEW_CREATED",
		ReviewID:  review.ID,
		BookID:    review.BookID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Timestamp: now,
	}
	if err := s.publishReviewEvent(ctx, event); err != nil {
		logger.Warn().
			Err(err).
			Str("review_id", review.ID).
			Msg("Failed to publish review created event")
	}

	logger.Info().
		Str("review_id", review.ID).
		Str("book_id", book.ID).
		Float64("average_rating", book.AverageRating).
		Int("ratings_count", book.RatingsCount).
		Msg("Review created")

	return review, nil
}

// GetReviewsByBook получает отзывы книги в порядке добавления
func (s *ReviewService) GetReviewsByBook(ctx context.Context, bookID string) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.GetByBookID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}

// GetUserReviews получает все отзывы пользователя
func (s *ReviewService) GetUserReviews(ctx context.Context, userID string) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reviews: %w", err)
	}

	return reviews, nil
}

// publishReviewEvent отправляет событие об отзыве в Kafka
func (s *ReviewService) publishReviewEvent(ctx context.Context, event entity.ReviewEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	// Ключ = ReviewID для партиционирования
	if err := s.publisher.PublishMessage(ctx, event.ReviewID, eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}
