package repository

import (
	"time"

	"pageturner/internal/app/pageturner/entity"
)

// SeedData возвращает стартовые коллекции каталога.
// Агрегаты книг согласованы с отзывами: average_rating равен среднему
// по отзывам книги, ratings_count - их количеству.
func SeedData() ([]entity.Book, []entity.User, []entity.Review) {
	books := []entity.Book{
		{
			ID:            "book-1",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			CoverImage:    "/covers/pride-and-prejudice.jpg",
			Description:   "A sparkling comedy of manners following Elizabeth Bennet as she navigates love, family and social standing in Regency England.",
			PublishedDate: "1813-01-28",
			Genres:        []string{"Fiction", "Romance", "Classic"},
			ISBN:          "9780141439518",
			PageCount:     432,
			AverageRating: 4.5,
			RatingsCount:  2,
			Featured:      true,
		},
		{
			ID:            "book-2",
			Title:         "Murder on the Orient Express",
			Author:        "Agatha Christie",
			CoverImage:    "/covers/orient-express.jpg",
			Description:   "Hercule Poirot investigates a murder aboard a snowbound train where every passenger is a suspect.",
			PublishedDate: "1934-01-01",
			Genres:        []string{"Mystery", "Fiction"},
			ISBN:          "9780062693662",
			PageCount:     256,
			AverageRating: 4.0,
			RatingsCount:  1,
			Featured:      true,
		},
		{
			ID:            "book-3",
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			CoverImage:    "/covers/the-hobbit.jpg",
			Description:   "Bilbo Baggins is swept into a quest to reclaim the lost Dwarf Kingdom of Erebor from the dragon Smaug.",
			PublishedDate: "1937-09-21",
			Genres:        []string{"Fantasy", "Adventure"},
			ISBN:          "9780547928227",
			PageCount:     310,
			AverageRating: 5.0,
			RatingsCount:  2,
			Featured:      true,
		},
		{
			ID:            "book-4",
			Title:         "Sapiens: A Brief History of Humankind",
			Author:        "Yuval Noah Harari",
			CoverImage:    "/covers/sapiens.jpg",
			Description:   "A sweeping account of how an insignificant ape became the ruler of planet Earth.",
			PublishedDate: "2011-02-10",
			Genres:        []string{"Non-fiction", "History"},
			ISBN:          "9780062316097",
			PageCount:     443,
		},
		{
			ID:            "book-5",
			Title:         "1984",
			Author:        "George Orwell",
			CoverImage:    "/covers/1984.jpg",
			Description:   "Winston Smith rewrites history for the Ministry of Truth while dreaming of rebellion against Big Brother.",
			PublishedDate: "1949-06-08",
			Genres:        []string{"Fiction", "Dystopia", "Classic"},
			ISBN:          "9780451524935",
			PageCount:     328,
			AverageRating: 4.0,
			RatingsCount:  1,
		},
		{
			ID:            "book-6",
			Title:         "The Name of the Wind",
			Author:        "Patrick Rothfuss",
			CoverImage:    "/covers/name-of-the-wind.jpg",
			Description:   "Kvothe recounts his transformation from a troupe child into the most notorious wizard his world has ever seen.",
			PublishedDate: "2007-03-27",
			Genres:        []string{"Fantasy"},
			ISBN:          "9780756404741",
			PageCount:     662,
		},
	}

	users := []entity.User{
		{
			ID:             "user-1",
			Name:           "Emma Thompson",
			Email:          "emma@example.com",
			Avatar:         "/avatars/emma.jpg",
			Bio:            "Book club organizer and hopeless romantic. Rereads Austen every winter.",
			FavoriteGenres: []string{"Romance", "Classic"},
			BooksRead:      127,
			ReviewsWritten: 48,
			JoinedDate:     "2022-03-14",
		},
		{
			ID:             "user-2",
			Name:           "James Chen",
			Email:          "james@example.com",
			Avatar:         "/avatars/james.jpg",
			Bio:            "Software engineer by day, fantasy cartographer by night.",
			FavoriteGenres: []string{"Fantasy", "Mystery"},
			BooksRead:      89,
			ReviewsWritten: 31,
			JoinedDate:     "2021-11-02",
		},
		{
			ID:             "user-3",
			Name:           "Sofia Garcia",
			Email:          "sofia@example.com",
			Avatar:         "/avatars/sofia.jpg",
			Bio:            "History teacher collecting first editions.",
			FavoriteGenres: []string{"History", "Non-fiction"},
			BooksRead:      203,
			ReviewsWritten: 76,
			JoinedDate:     "2020-07-19",
		},
	}

	seedTime := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	reviews := []entity.Review{
		{
			ID:        "review-1",
			BookID:    "book-1",
			UserID:    "user-1",
			User:      users[0],
			Rating:    5,
			Text:      "Elizabeth Bennet remains the sharpest heroine in English literature. A comfort read that never dulls.",
			CreatedAt: seedTime("2024-01-12T10:24:00Z"),
			UpdatedAt: seedTime("2024-01-12T10:24:00Z"),
		},
		{
			ID:        "review-2",
			BookID:    "book-1",
			UserID:    "user-2",
			User:      users[1],
			Rating:    4,
			Text:      "Slow to start, but the dialogue earns every page. Mr. Collins is unbearable in the best way.",
			CreatedAt: seedTime("2024-02-03T18:02:00Z"),
			UpdatedAt: seedTime("2024-02-03T18:02:00Z"),
		},
		{
			ID:        "review-3",
			BookID:    "book-2",
			UserID:    "user-1",
			User:      users[0],
			Rating:    4,
			Text:      "The ending still lands even when you know it. Poirot at his most theatrical.",
			CreatedAt: seedTime("2024-02-20T09:41:00Z"),
			UpdatedAt: seedTime("2024-02-20T09:41:00Z"),
		},
		{
			ID:        "review-4",
			BookID:    "book-3",
			UserID:    "user-3",
			User:      users[2],
			Rating:    5,
			Text:      "Read it aloud to my class every year. Riddles in the dark is a perfect chapter.",
			CreatedAt: seedTime("2024-03-05T15:10:00Z"),
			UpdatedAt: seedTime("2024-03-05T15:10:00Z"),
		},
		{
			ID:        "review-5",
			BookID:    "book-3",
			UserID:    "user-2",
			User:      users[1],
			Rating:    5,
			Text:      "The gold standard for adventure pacing. Smaug deserves his reputation.",
			CreatedAt: seedTime("2024-03-18T21:33:00Z"),
			UpdatedAt: seedTime("2024-03-18T21:33:00Z"),
		},
		{
			ID:        "review-6",
			BookID:    "book-5",
			UserID:    "user-3",
			User:      users[2],
			Rating:    4,
			Text:      "Bleak and necessary. The appendix on Newspeak is the scariest part of the book.",
			CreatedAt: seedTime("2024-04-01T08:15:00Z"),
			UpdatedAt: seedTime("2024-04-01T08:15:00Z"),
		},
	}

	return books, users, reviews
}
