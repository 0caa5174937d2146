package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// membershipTable is the join table between conferences and users. The name
// matches the relational schema: composite primary key (conference_id,
// user_id), cascading deletes both directions.
const membershipTable = "conference_conferential_user"

// JoinConference adds a user to a conference. The duplicate check, the
// capacity check and the insert run in one transaction so concurrent joins
// cannot push a conference past MaxMembers.
func (c *Client) JoinConference(ctx context.Context, conferenceID, userID uint) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conf Conference
		if err := tx.First(&conf, conferenceID).Error; err != nil {
			return err
		}
		var user User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Table(membershipTable).
			Where("conference_id = ? AND user_id = ?", conferenceID, userID).
			Count(&count).Error; err != nil {
			log.Error("failed to check membership", "error", err)
			return err
		}
		if count > 0 {
			return ErrAlreadyJoined
		}

		if err := tx.Table(membershipTable).
			Where("conference_id = ?", conferenceID).
			Count(&count).Error; err != nil {
			log.Error("failed to count members", "error", err)
			return err
		}
		if count >= MaxMembers {
			return ErrConferenceFull
		}

		if err := tx.Exec("INSERT INTO "+membershipTable+" (conference_id, user_id) VALUES (?, ?)",
			conferenceID, userID).Error; err != nil {
			log.Error("failed to add member", "error", err)
			return err
		}
		return nil
	})
}

// LeaveConference removes a user from a conference. Leaving a conference the
// user never joined is rejected.
func (c *Client) LeaveConference(ctx context.Context, conferenceID, userID uint) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conf Conference
		if err := tx.First(&conf, conferenceID).Error; err != nil {
			return err
		}

		result := tx.Exec("DELETE FROM "+membershipTable+" WHERE conference_id = ? AND user_id = ?",
			conferenceID, userID)
		if result.Error != nil {
			log.Error("failed to remove member", "error", result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotJoined
		}
		return nil
	})
}

// IsMember reports whether the user has joined the conference.
func (c *Client) IsMember(ctx context.Context, conferenceID, userID uint) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Table(membershipTable).
		Where("conference_id = ? AND user_id = ?", conferenceID, userID).
		Count(&count).Error; err != nil {
		log.Error("failed to check membership", "error", err)
		return false, err
	}
	return count > 0, nil
}

// CountMembers returns the number of users that joined the conference.
func (c *Client) CountMembers(ctx context.Context, conferenceID uint) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Table(membershipTable).
		Where("conference_id = ?", conferenceID).
		Count(&count).Error; err != nil {
		log.Error("failed to count members", "error", err)
		return 0, err
	}
	return count, nil
}
