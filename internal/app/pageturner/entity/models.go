package entity

import (
	"time"
)

// Book представляет книгу в каталоге
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	CoverImage    string   `json:"cover_image"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"published_date"`
	Genres        []string `json:"genres"`
	ISBN          string   `json:"isbn"`
	PageCount     int      `json:"page_count"`
	AverageRating float64  `json:"average_rating"` // Среднее по отзывам, один знак после запятой
	RatingsCount  int      `json:"ratings_count"`  // Количество отзывов на книгу
	Featured      bool     `json:"featured,omitempty"`
}

// User представляет читателя
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"` // Уникален, сравнивается без учёта регистра
	Avatar         string   `json:"avatar"`
	Bio            string   `json:"bio,omitempty"`
	FavoriteGenres []string `json:"favorite_genres,omitempty"`
	BooksRead      int      `json:"books_read,omitempty"`
	ReviewsWritten int      `json:"reviews_written,omitempty"`
	JoinedDate     string   `json:"joined_date"`
}

// Review представляет отзыв пользователя на книгу
// Поле User - снимок автора на момент создания, дальнейшие изменения
// пользователя в нём не отражаются
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	User      User      `json:"user"`
	Rating    int       `json:"rating"` // Оценка от 1 до 5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Likes     int       `json:"likes"`
	Helpful   int       `json:"helpful"`
}

// BookFilters содержит критерии выборки каталога
// Нулевое значение поля означает отсутствие ограничения
type BookFilters struct {
	Genre       string  `json:"genre,omitempty"`        // Точное совпадение с одним из жанров книги
	Rating      float64 `json:"rating,omitempty"`       // Нижняя граница среднего рейтинга (включительно)
	SearchQuery string  `json:"search_query,omitempty"` // Подстрока без учёта регистра
}

// IsEmpty сообщает, что ни один критерий не задан
func (f BookFilters) IsEmpty() bool {
	return f.Genre == "" && f.Rating == 0 && f.SearchQuery == ""
}

// ReviewEvent представляет событие создания отзыва для Kafka
type ReviewEvent struct {
	EventType string    `json:"event_type"` // REVIEW_CREATED
	ReviewID  string    `json:"review_id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}
