package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// MaxMembers is the member capacity of a single conference.
	MaxMembers = 10
	// MaxSlotOccupancy is the number of parallel conferences a date/slot pair can hold.
	MaxSlotOccupancy = 10
	// slotDuration is the fixed length of every conference session.
	slotDuration = 45 * time.Minute
)

// slotStartTimes maps slot numbers 1-10 to their fixed start-of-day clock times.
var slotStartTimes = [...]struct{ hour, minute int }{
	{8, 30}, {9, 30}, {10, 30}, {11, 30},
	{13, 0}, {14, 0}, {15, 0}, {16, 0}, {17, 0}, {18, 0},
}

// Conference represents a single conference session occupying one of the ten
// daily time slots. StartDateTime and EndDateTime are derived from Date and
// SlotNumber and are never set independently.
type Conference struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"not null" json:"description"`
	SpeakerName   string    `gorm:"not null" json:"speakerName"`
	SpeakerBio    string    `gorm:"not null" json:"speakerBio"`
	Date          time.Time `gorm:"not null" json:"date"`
	SlotNumber    int       `gorm:"not null" json:"slotNumber"`
	StartDateTime time.Time `gorm:"not null" json:"startDateTime"`
	EndDateTime   time.Time `gorm:"not null" json:"endDateTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Members []User `gorm:"many2many:conference_conferential_user;constraint:OnDelete:CASCADE" json:"-"`
}

// ComputeSchedule derives StartDateTime and EndDateTime from Date and
// SlotNumber. It must run before every insert and before every update that
// touches Date or SlotNumber so stale schedule values never persist.
func (conf *Conference) ComputeSchedule() error {
	if conf.SlotNumber < 1 || conf.SlotNumber > len(slotStartTimes) {
		return ErrInvalidSlot
	}
	slot := slotStartTimes[conf.SlotNumber-1]
	year, month, day := conf.Date.Date()
	start := time.Date(year, month, day, slot.hour, slot.minute, 0, 0, conf.Date.Location())
	conf.StartDateTime = start
	conf.EndDateTime = start.Add(slotDuration)
	return nil
}

// CreateConference derives the schedule and inserts the conference. The
// occupancy check and the insert run in one transaction so a date/slot pair
// never holds more than MaxSlotOccupancy conferences.
func (c *Client) CreateConference(ctx context.Context, conf *Conference) error {
	if err := conf.ComputeSchedule(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Conference{}).
			Where("date = ? AND slot_number = ?", conf.Date, conf.SlotNumber).
			Count(&count).Error; err != nil {
			log.Error("failed to count conferences in slot", "error", err)
			return err
		}
		if count >= MaxSlotOccupancy {
			return ErrSlotOccupied
		}
		if err := tx.Create(conf).Error; err != nil {
			log.Error("failed to create conference", "error", err)
			return err
		}
		return nil
	})
}

// GetConference returns a conference with its members preloaded.
func (c *Client) GetConference(ctx context.Context, id uint) (*Conference, error) {
	var conf Conference
	if err := c.db.WithContext(ctx).Preload("Members").First(&conf, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get conference", "error", err)
		}
		return nil, err
	}
	return &conf, nil
}

// ListConferences returns conferences ordered by date then slot ascending.
// If day is non-nil, only conferences on that calendar date are returned.
func (c *Client) ListConferences(ctx context.Context, day *time.Time) ([]Conference, error) {
	tx := c.db.WithContext(ctx).Order("date ASC, slot_number ASC")
	if day != nil {
		tx = tx.Where("date = ?", *day)
	}
	var conferences []Conference
	if err := tx.Find(&conferences).Error; err != nil {
		log.Error("failed to list conferences", "error", err)
		return nil, err
	}
	return conferences, nil
}

// UpdateConference re-derives the schedule and persists the conference.
func (c *Client) UpdateConference(ctx context.Context, conf *Conference) error {
	if err := conf.ComputeSchedule(); err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Omit("Members").Save(conf).Error; err != nil {
		log.Error("failed to update conference", "error", err)
		return err
	}
	return nil
}

// DeleteConference removes a conference and any membership rows.
func (c *Client) DeleteConference(ctx context.Context, id uint) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conf Conference
		if err := tx.First(&conf, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error("failed to get conference for deletion", "error", err)
			}
			return err
		}
		if err := tx.Select(clause.Associations).Delete(&conf).Error; err != nil {
			log.Error("failed to delete conference", "error", err)
			return err
		}
		return nil
	})
}
