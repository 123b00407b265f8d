package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pageturner/internal/app/pageturner/entity"
	"pageturner/internal/app/pageturner/service"
)

// CatalogHandler обрабатывает HTTP запросы каталога
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListBooks обрабатывает GET /books
// Критерии выборки передаются query-параметрами genre, rating, search;
// отсутствующие параметры не ограничивают выборку
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	filters := entity.BookFilters{
		Genre:       c.Query("genre"),
		SearchQuery: c.Query("search"),
	}

	if ratingStr := c.Query("rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating filter"})
			return
		}
		filters.Rating = rating
	}

	books, err := h.catalogService.ListBooks(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get books"})
		return
	}

	c.JSON(http.StatusOK, entity.BookListResponse{
		Books: books,
		Total: len(books),
	})
}

// FeaturedBooks обрабатывает GET /books/featured
func (h *CatalogHandler) FeaturedBooks(c *gin.Context) {
	books, err := h.catalogService.FeaturedBooks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get featured books"})
		return
	}

	c.JSON(http.StatusOK, entity.BookListResponse{
		Books: books,
		Total: len(books),
	})
}

// ListGenres обрабатывает GET /books/genres
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.catalogService.ListGenres(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get genres"})
		return
	}

	c.JSON(http.StatusOK, entity.GenreListResponse{
		Genres: genres,
		Total:  len(genres),
	})
}

// GetBook обрабатывает GET /books/:id
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id := c.Param("id")

	book, err := h.catalogService.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get book"})
		return
	}

	c.JSON(http.StatusOK, book)
}
