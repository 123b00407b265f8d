package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/repository"
	"pageturner/pkg/metrics"
)

// CatalogService обрабатывает запросы к каталогу книг.
// Производные выборки (фильтрованный и рекомендуемый списки) считаются
// заново при каждом обращении - коллекции маленькие, кешировать нечего.
type CatalogService struct {
	bookRepo repository.BookRepository
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(bookRepo repository.BookRepository) *CatalogService {
	return &CatalogService{
		bookRepo: bookRepo,
	}
}

// GetBook получает книгу по ID
func (s *CatalogService) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

// ListBooks возвращает каталог, отфильтрованный по критериям.
// Все заданные критерии объединяются по AND; пустые критерии
// возвращают каталог целиком в исходном порядке.
func (s *CatalogService) ListBooks(ctx context.Context, filters entity.BookFilters) ([]entity.Book, error) {
	books, err := s.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}

	metrics.CatalogQueries.WithLabelValues("filtered").Inc()

	if filters.IsEmpty() {
		return books, nil
	}

	result := make([]entity.Book, 0, len(books))
	for _, book := range books {
		if matchesFilters(book, filters) {
			result = append(result, book)
		}
	}

	return result, nil
}

// FeaturedBooks возвращает книги с флагом featured в исходном порядке
func (s *CatalogService) FeaturedBooks(ctx context.Context) ([]entity.Book, error) {
	books, err := s.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}

	metrics.CatalogQueries.WithLabelValues("featured").Inc()

	result := make([]entity.Book, 0)
	for _, book := range books {
		if book.Featured {
			result = append(result, book)
		}
	}

	return result, nil
}

// ListGenres возвращает жанры каталога без дубликатов,
// в порядке первого появления
func (s *CatalogService) ListGenres(ctx context.Context) ([]string, error) {
	books, err := s.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}

	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, book := range books {
		for _, g := range book.Genres {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				genres = append(genres, g)
			}
		}
	}

	return genres, nil
}

func matchesFilters(book entity.Book, filters entity.BookFilters) bool {
	if filters.Genre != "" && !containsGenre(book.Genres, filters.Genre) {
		return false
	}

	if filters.Rating != 0 && book.AverageRating < filters.Rating {
		return false
	}

	if filters.SearchQuery != "" && !matchesQuery(book, filters.SearchQuery) {
		return false
	}

	return true
}

// containsGenre проверяет точное совпадение жанра
func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

// matchesQuery ищет подстроку без учёта регистра
// в названии, авторе, описании и жанрах книги
func matchesQuery(book entity.Book, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(book.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Author), q) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Description), q) {
		return true
	}
	for _, g := range book.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}

	return false
}
