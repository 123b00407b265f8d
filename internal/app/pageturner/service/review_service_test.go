package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/repository/mocks"
)

func loggedInSession() *SessionState {
	session := NewSessionState()
	session.setCurrentUser(&entity.User{
		ID:    "user-1",
		Name:  "Emma Thompson",
		Email: "emma@example.com",
	})
	return session
}

func TestCreateReview_Success(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	session := loggedInSession()
	svc := NewReviewService(reviewRepo, session, publisher)

	updatedBook := &entity.Book{ID: "book-1", AverageRating: 4.0, RatingsCount: 3}
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(updatedBook, nil)
	publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 4, Text: "Thoroughly enjoyed this one."}
	review, err := svc.CreateReview(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "book-1", review.BookID)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, 4, review.Rating)
	assert.Zero(t, review.Likes)
	assert.Zero(t, review.Helpful)
	assert.False(t, review.CreatedAt.IsZero())
	assert.Equal(t, review.CreatedAt, review.UpdatedAt)
}

func TestCreateReview_EmbedsUserSnapshot(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	session := loggedInSession()
	svc := NewReviewService(reviewRepo, session, publisher)

	reviewRepo.On("Create", mock.Anything, mock.Anything).Return(&entity.Book{ID: "book-1"}, nil)
	publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 5, Text: "An instant favorite of mine."}
	review, err := svc.CreateReview(context.Background(), req)
	require.NoError(t, err)

	// Снимок автора сделан в момент создания и не следует
	// за сменой текущего пользователя
	session.setCurrentUser(&entity.User{ID: "user-2", Name: "Someone Else"})

	assert.Equal(t, "user-1", review.User.ID)
	assert.Equal(t, "Emma Thompson", review.User.Name)
}

func TestCreateReview_Unauthenticated_MutatesNothing(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	session := NewSessionState()
	svc := NewReviewService(reviewRepo, session, publisher)

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 5, Text: "Should never be stored anywhere."}
	review, err := svc.CreateReview(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, review)
	assert.NotEmpty(t, session.LastError())
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReview_RepoError(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, loggedInSession(), publisher)

	reviewRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("store error"))

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 3, Text: "This opinion will be lost."}
	review, err := svc.CreateReview(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, review)
	publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReview_KafkaErrorIgnored(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, loggedInSession(), publisher)

	reviewRepo.On("Create", mock.Anything, mock.Anything).Return(&entity.Book{ID: "book-1"}, nil)
	publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("kafka error"))

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 3, Text: "Kafka being down is not my problem."}
	review, err := svc.CreateReview(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, review)
}

func TestCreateReview_PublishesReviewCreatedEvent(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, loggedInSession(), publisher)

	reviewRepo.On("Create", mock.Anything, mock.Anything).Return(&entity.Book{ID: "book-1"}, nil)
	publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 5, Text: "Everyone should hear about this."}
	review, err := svc.CreateReview(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, publisher.Messages, 1)
	var event entity.ReviewEvent
	require.NoError(t, json.Unmarshal(publisher.Messages[0], &event))
	assert.Equal(t, "REVIEW_CREATED", event.EventType)
	assert.Equal(t, review.ID, event.ReviewID)
	assert.Equal(t, "book-1", event.BookID)
	assert.Equal(t, 5, event.Rating)
}

func TestCreateReview_TrustsValidatedInput(t *testing.T) {
	// Диапазон оценки проверяется на уровне DTO; сервис сознательно
	// не перепроверяет и передаёт значение в хранилище как есть
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, loggedInSession(), publisher)

	reviewRepo.On("Create", mock.Anything, mock.Anything).Return(&entity.Book{ID: "book-1"}, nil)
	publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := &entity.CreateReviewRequest{BookID: "book-1", Rating: 7, Text: "Off the scale, literally."}
	review, err := svc.CreateReview(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 7, review.Rating)
}

func TestGetReviewsByBook(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, NewSessionState(), publisher)

	reviews := []entity.Review{
		{ID: "r1", BookID: "book-1", Rating: 5},
		{ID: "r2", BookID: "book-1", Rating: 4},
	}
	reviewRepo.On("GetByBookID", mock.Anything, "book-1").Return(reviews, nil)

	result, err := svc.GetReviewsByBook(context.Background(), "book-1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGetUserReviews(t *testing.T) {
	reviewRepo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewReviewService(reviewRepo, NewSessionState(), publisher)

	reviewRepo.On("GetByUserID", mock.Anything, "user-1").Return([]entity.Review{}, nil)

	result, err := svc.GetUserReviews(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, result)
}
