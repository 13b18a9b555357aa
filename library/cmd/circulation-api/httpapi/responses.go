package httpapi

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowdetails"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowlist"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/catalogsearch"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/delaypenalties"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/relatedbooks"
)

type tagResponse struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

type bookResponse struct {
	BookID  string   `json:"book_id"`
	Title   string   `json:"title"`
	ISBN    string   `json:"isbn"`
	Authors string   `json:"authors"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
	Copies  int      `json:"copies"`
	Shared  *int     `json:"shared_tags,omitempty"`
}

type bookListResponse struct {
	Count int            `json:"count"`
	Books []bookResponse `json:"books"`
}

type relatedBooksResponse struct {
	BookID   string         `json:"book_id"`
	Count    int            `json:"count"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Results  []bookResponse `json:"results"`
}

type availabilityResponse struct {
	BookID             string `json:"book_id"`
	Copies             int    `json:"copies"`
	OutstandingBorrows int    `json:"outstanding_borrows"`
	AvailableCopies    int    `json:"available_copies"`
	IsAvailable        bool   `json:"is_available"`
}

type penaltyResponse struct {
	PenaltyID string     `json:"penalty_id"`
	BorrowID  string     `json:"borrow_id,omitempty"`
	StudentID string     `json:"student,omitempty"`
	BookID    string     `json:"book,omitempty"`
	OutDays   int        `json:"out_days"`
	Amount    int64      `json:"amount"`
	IsPaid    bool       `json:"is_paid"`
	ImposedAt time.Time  `json:"imposed_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

type penaltyListResponse struct {
	Count     int               `json:"count"`
	Penalties []penaltyResponse `json:"penalties"`
}

type borrowResponse struct {
	BorrowID     string           `json:"borrow_id"`
	StudentID    string           `json:"student"`
	BookID       string           `json:"book"`
	State        string           `json:"state"`
	RequestedAt  time.Time        `json:"requested_at"`
	BorrowedAt   *time.Time       `json:"borrowed_at,omitempty"`
	DurationDays int              `json:"duration,omitempty"`
	ReturnedAt   *time.Time       `json:"returned_at,omitempty"`
	OutDays      *int             `json:"out_days,omitempty"`
	IsOverdue    *bool            `json:"is_overdue,omitempty"`
	Penalty      *penaltyResponse `json:"penalty,omitempty"`
}

type borrowListResponse struct {
	Count   int              `json:"count"`
	Borrows []borrowResponse `json:"borrows"`
}

func availabilityResponseFrom(r bookavailability.BookAvailability) availabilityResponse {
	return availabilityResponse{
		BookID:             r.BookID,
		Copies:             r.Copies,
		OutstandingBorrows: r.OutstandingBorrows,
		AvailableCopies:    r.AvailableCopies,
		IsAvailable:        r.IsAvailable,
	}
}

func bookListResponseFrom(r catalogsearch.CatalogSearchResult) bookListResponse {
	books := make([]bookResponse, 0, len(r.Books))
	for _, b := range r.Books {
		books = append(books, bookResponse{
			BookID:  b.BookID,
			Title:   b.Title,
			ISBN:    b.ISBN,
			Authors: b.Authors,
			Type:    b.BookType,
			Tags:    nonNil(b.TagIDs),
			Copies:  b.Copies,
		})
	}

	return bookListResponse{Count: r.Count, Books: books}
}

func relatedBooksResponseFrom(r relatedbooks.RelatedBooks) relatedBooksResponse {
	results := make([]bookResponse, 0, len(r.Results))
	for _, b := range r.Results {
		shared := b.SharedTags
		results = append(results, bookResponse{
			BookID:  b.BookID,
			Title:   b.Title,
			ISBN:    b.ISBN,
			Authors: b.Authors,
			Type:    b.BookType,
			Tags:    nonNil(b.TagIDs),
			Copies:  b.Copies,
			Shared:  &shared,
		})
	}

	return relatedBooksResponse{
		BookID:   r.BookID,
		Count:    r.Count,
		Page:     r.Page,
		PageSize: r.PageSize,
		Results:  results,
	}
}

func borrowResponseFrom(r borrowdetails.BorrowDetails) borrowResponse {
	response := borrowResponse{
		BorrowID:     r.BorrowID,
		StudentID:    r.StudentID,
		BookID:       r.BookID,
		State:        string(r.State),
		RequestedAt:  r.RequestedAt,
		BorrowedAt:   r.BorrowedAt,
		DurationDays: r.DurationDays,
		ReturnedAt:   r.ReturnedAt,
	}

	if r.BorrowedAt != nil {
		outDays, isOverdue := r.OutDays, r.IsOverdue
		response.OutDays = &outDays
		response.IsOverdue = &isOverdue
	}

	if r.Penalty != nil {
		response.Penalty = &penaltyResponse{
			PenaltyID: r.Penalty.PenaltyID,
			OutDays:   r.Penalty.OutDays,
			Amount:    r.Penalty.Amount,
			IsPaid:    r.Penalty.IsPaid,
			ImposedAt: r.Penalty.ImposedAt,
			PaidAt:    r.Penalty.PaidAt,
		}
	}

	return response
}

func borrowListResponseFrom(r borrowlist.BorrowList) borrowListResponse {
	borrows := make([]borrowResponse, 0, len(r.Borrows))
	for _, b := range r.Borrows {
		borrows = append(borrows, borrowResponse{
			BorrowID:     b.BorrowID,
			StudentID:    b.StudentID,
			BookID:       b.BookID,
			State:        string(b.State),
			RequestedAt:  b.RequestedAt,
			BorrowedAt:   b.BorrowedAt,
			DurationDays: b.DurationDays,
			ReturnedAt:   b.ReturnedAt,
		})
	}

	return borrowListResponse{Count: r.Count, Borrows: borrows}
}

func penaltyResponseFrom(p delaypenalties.DelayPenalty) penaltyResponse {
	return penaltyResponse{
		PenaltyID: p.PenaltyID,
		BorrowID:  p.BorrowID,
		StudentID: p.StudentID,
		BookID:    p.BookID,
		OutDays:   p.OutDays,
		Amount:    p.Amount,
		IsPaid:    p.IsPaid,
		ImposedAt: p.ImposedAt,
		PaidAt:    p.PaidAt,
	}
}

func penaltyListResponseFrom(r delaypenalties.DelayPenalties) penaltyListResponse {
	penalties := make([]penaltyResponse, 0, len(r.Penalties))
	for _, p := range r.Penalties {
		penalties = append(penalties, penaltyResponseFrom(p))
	}

	return penaltyListResponse{Count: r.Count, Penalties: penalties}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
