package models

import (
	"github.com/samber/lo"

	"github.com/conferential/conferential/database"
)

// UserResponseFrom converts a user entity to its public projection.
func UserResponseFrom(user *database.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		IsSponsor: user.IsSponsor,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserResponsesFrom converts a list of user entities.
func UserResponsesFrom(users []database.User) []UserResponse {
	return lo.Map(users, func(user database.User, _ int) UserResponse {
		return UserResponseFrom(&user)
	})
}

// ConferenceResponseFrom converts a conference entity to its public projection.
func ConferenceResponseFrom(conf *database.Conference) ConferenceResponse {
	return ConferenceResponse{
		ID:            conf.ID,
		Title:         conf.Title,
		Description:   conf.Description,
		SpeakerName:   conf.SpeakerName,
		SpeakerBio:    conf.SpeakerBio,
		Date:          conf.Date,
		SlotNumber:    conf.SlotNumber,
		StartDateTime: conf.StartDateTime,
		EndDateTime:   conf.EndDateTime,
	}
}

// ConferenceResponsesFrom converts a list of conference entities.
func ConferenceResponsesFrom(conferences []database.Conference) []ConferenceResponse {
	return lo.Map(conferences, func(conf database.Conference, _ int) ConferenceResponse {
		return ConferenceResponseFrom(&conf)
	})
}

// ConferenceDetailResponseFrom converts a conference with its members.
// isJoined is included only when non-nil, i.e. for authenticated requests.
func ConferenceDetailResponseFrom(conf *database.Conference, isJoined *bool) ConferenceDetailResponse {
	return ConferenceDetailResponse{
		ConferenceResponse: ConferenceResponseFrom(conf),
		Members:            UserResponsesFrom(conf.Members),
		IsJoined:           isJoined,
	}
}
