package response

import "github.com/google/uuid"

type AuthResponse struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type BalanceResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Balance   int       `json:"balance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
