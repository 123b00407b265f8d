package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/repository"
	"pageturner/internal/app/pageturner/repository/mocks"
)

func catalogFixture() []entity.Book {
	return []entity.Book{
		{
			ID:            "b1",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			Description:   "A comedy of manners in Regency England.",
			Genres:        []string{"Fiction", "Romance"},
			AverageRating: 4.5,
			Featured:      true,
		},
		{
			ID:            "b2",
			Title:         "Murder on the Orient Express",
			Author:        "Agatha Christie",
			Description:   "A murder aboard a snowbound train.",
			Genres:        []string{"Mystery", "Fiction"},
			AverageRating: 4.0,
		},
		{
			ID:            "b3",
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			Description:   "A quest to reclaim a dwarf kingdom.",
			Genres:        []string{"Fantasy"},
			AverageRating: 5.0,
			Featured:      true,
		},
		{
			ID:          "b4",
			Title:       "Unrated Debut",
			Author:      "Nobody Yet",
			Description: "Nobody has reviewed this one.",
			Genres:      []string{"Fiction"},
		},
	}
}

func newCatalogService(t *testing.T) (*CatalogService, *mocks.MockBookRepository) {
	t.Helper()
	bookRepo := new(mocks.MockBookRepository)
	return NewCatalogService(bookRepo), bookRepo
}

func TestListBooks_EmptyFilters_ReturnsAllInOrder(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{})

	require.NoError(t, err)
	require.Len(t, books, 4)
	assert.Equal(t, "b1", books[0].ID)
	assert.Equal(t, "b2", books[1].ID)
	assert.Equal(t, "b3", books[2].ID)
	assert.Equal(t, "b4", books[3].ID)
}

func TestListBooks_GenreFilter_ExactMatch(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{Genre: "Fiction"})

	require.NoError(t, err)
	require.Len(t, books, 3)
	for _, book := range books {
		assert.Contains(t, book.Genres, "Fiction")
	}
}

func TestListBooks_GenreFilter_NoSubstringMatch(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	// "Fict" не является жанром ни одной книги, совпадение только точное
	books, err := svc.ListBooks(context.Background(), entity.BookFilters{Genre: "Fict"})

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListBooks_RatingFilter_InclusiveLowerBound(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{Rating: 4.5})

	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, book := range books {
		assert.GreaterOrEqual(t, book.AverageRating, 4.5)
	}
}

func TestListBooks_SearchByAuthor_CaseInsensitive(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{SearchQuery: "christie"})

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "b2", books[0].ID)
}

func TestListBooks_SearchMatchesGenre(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{SearchQuery: "fantasy"})

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "b3", books[0].ID)
}

func TestListBooks_CombinedFilters_AllMustMatch(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{
		Genre:       "Fiction",
		Rating:      4.5,
		SearchQuery: "austen",
	})

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "b1", books[0].ID)
}

func TestListBooks_CombinedFilters_NoMatch(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.ListBooks(context.Background(), entity.BookFilters{
		Genre:  "Mystery",
		Rating: 4.5,
	})

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestFeaturedBooks(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	books, err := svc.FeaturedBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "b1", books[0].ID)
	assert.Equal(t, "b3", books[1].ID)
}

func TestListGenres_DistinctInFirstSeenOrder(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetAll", mock.Anything).Return(catalogFixture(), nil)

	genres, err := svc.ListGenres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Fiction", "Romance", "Mystery", "Fantasy"}, genres)
}

func TestGetBook_NotFound(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	bookRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrBookNotFound)

	book, err := svc.GetBook(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, book)
}

func TestGetBook_Success(t *testing.T) {
	svc, bookRepo := newCatalogService(t)
	fixture := catalogFixture()
	bookRepo.On("GetByID", mock.Anything, "b1").Return(&fixture[0], nil)

	book, err := svc.GetBook(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Pride and Prejudice", book.Title)
}
