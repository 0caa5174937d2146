package models

import "time"

// RegisterRequest is the body for POST /users/register.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthStatusResponse is the body for GET /isAuth.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
	UserID        uint `json:"userId,omitempty"`
}

// UserResponse is the public projection of a user. The password hash is
// never exposed.
type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	IsSponsor bool      `json:"isSponsor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConferenceCreateRequest is the body for POST /conferences. Date is a
// calendar date in YYYY-MM-DD form.
type ConferenceCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	SpeakerName string `json:"speakerName" binding:"required"`
	SpeakerBio  string `json:"speakerBio" binding:"required"`
	Date        string `json:"date" binding:"required"`
	SlotNumber  int    `json:"slotNumber" binding:"required"`
}

// ConferenceUpdateRequest is the body for PUT /conferences/:id. All fields
// are optional; absent fields are left unchanged.
type ConferenceUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SpeakerName *string `json:"speakerName"`
	SpeakerBio  *string `json:"speakerBio"`
	Date        *string `json:"date"`
	SlotNumber  *int    `json:"slotNumber"`
}

// ConferenceResponse is the public projection of a conference.
type ConferenceResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SpeakerName   string    `json:"speakerName"`
	SpeakerBio    string    `json:"speakerBio"`
	Date          time.Time `json:"date"`
	SlotNumber    int       `json:"slotNumber"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
}

// ConferenceDetailResponse extends ConferenceResponse with the member list
// and, for authenticated requests, whether the requester has joined.
type ConferenceDetailResponse struct {
	ConferenceResponse
	Members  []UserResponse `json:"members"`
	IsJoined *bool          `json:"isJoined,omitempty"`
}
