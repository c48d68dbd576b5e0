package models

// Domain types

type User struct {
	ID       int64  `json:"-"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never expose in JSON
}

type Booth struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Password    string `json:"-"` // Never expose in JSON
}

// BoothPublic is the client-facing projection of a booth.
type BoothPublic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Completion struct {
	UserID    int64  `json:"-"`
	BoothID   string `json:"booth_id"`
	Completed bool   `json:"completed"`
}

// UserPayload is the user shape returned by every endpoint that
// resolves a user. Completions holds only booths marked complete.
type UserPayload struct {
	Name        string          `json:"name"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Completions map[string]bool `json:"completions"`
}

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CompletionRequest struct {
	BoothID       string `json:"boothId"`
	BoothPassword string `json:"boothPassword"`
	Completed     bool   `json:"completed"`
}

// Response types

type BoothsResponse struct {
	Booths []BoothPublic `json:"booths"`
}

type UserResponse struct {
	User UserPayload `json:"user"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
