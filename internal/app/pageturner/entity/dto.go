package entity

// CreateReviewRequest - запрос на создание отзыва
// Диапазон оценки и длина текста проверяются на этом уровне,
// сервис доверяет провалидированному запросу
type CreateReviewRequest struct {
	BookID string `json:"book_id" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required,min=10,max=1000"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // время жизни access token в секундах
}

// SessionResponse - текущее состояние сессии для клиента
type SessionResponse struct {
	User      *User  `json:"user"`
	IsLoading bool   `json:"is_loading"`
	Error     string `json:"error,omitempty"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - стандартный ответ об успехе
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BookListResponse - ответ со списком книг
type BookListResponse struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
}

// GenreListResponse - ответ со списком жанров каталога
type GenreListResponse struct {
	Genres []string `json:"genres"`
	Total  int      `json:"total"`
}

// ReviewListResponse - ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}
