package domain

import "time"

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type Review struct {
	ID           string    `json:"id"`
	ProductID    int       `json:"productId"`
	UserID       string    `json:"-"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"date"`
}

type Favorite struct {
	UserID    string    `json:"-"`
	ProductID int       `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
