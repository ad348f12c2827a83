package models

type Notification struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	JobOfferID *int   `json:"job_offer_id"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}
