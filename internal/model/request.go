package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type PostRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

type ProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	PriceCents  int64  `json:"price_cents"`
	Active      bool   `json:"active"`
}

type TestimonialRequest struct {
	Author   string `json:"author"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Approved bool   `json:"approved"`
}

type CreateReservationRequest struct {
	ProgramID string `json:"program_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

type UpdateReservationRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type UpdateSettingRequest struct {
	Value string `json:"value"`
}
