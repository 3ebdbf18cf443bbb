package model

import (
	"posada/shared/model"
	"time"
)

const (
	TableName  = "occupations"
	EntityName = "occupation"

	GuestLinkTableName  = "occupation_guests"
	GuestLinkEntityName = "occupation_guest"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldCheckInDatetime  = "check_in_datetime"
	FieldCheckOutDatetime = "check_out_datetime"
	FieldStayType         = "stay_type"
	FieldNumberOfGuests   = "number_of_guests"
	FieldBasePrice        = "base_price"
	FieldDiscountAmount   = "discount_amount"
	FieldTotalPrice       = "total_price"
	FieldStatus           = "status"
	FieldNotes            = "notes"

	FieldOccupationID = "occupation_id"
	FieldGuestID      = "guest_id"
	FieldIsPrimary    = "is_primary"
)

const (
	StatusReserved   = "reserved"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	StayTypeHourly  = "hourly"
	StayTypeNightly = "nightly"
)

// Occupation is one stay of one room. The room columns come through the join
// and stay empty when the room row is gone.
type Occupation struct {
	ID               string    `db:"id"`
	RoomID           string    `db:"room_id"`
	CheckInDatetime  time.Time `db:"check_in_datetime"`
	CheckOutDatetime time.Time `db:"check_out_datetime"`
	StayType         string    `db:"stay_type"`
	NumberOfGuests   int       `db:"number_of_guests"`
	BasePrice        *float64  `db:"base_price"`
	DiscountAmount   *float64  `db:"discount_amount"`
	TotalPrice       float64   `db:"total_price"`
	Status           string    `db:"status"`
	Notes            *string   `db:"notes"`
	RoomNumber       *string   `db:"room_number" table:"rooms" column:"room_number"`
	RoomType         *string   `db:"room_type"   table:"rooms" column:"room_type"`
	RoomFloor        *int      `db:"room_floor"  table:"rooms" column:"floor"`
	model.AuditMetadata
	model.SoftDelete
}

func (Occupation) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = occupations.room_id"
}

// OccupationGuest links one guest to one occupation. Exactly one link per
// occupation carries is_primary = true, enforced by a partial unique index.
type OccupationGuest struct {
	ID           string    `db:"id"`
	OccupationID string    `db:"occupation_id"`
	GuestID      string    `db:"guest_id"`
	IsPrimary    bool      `db:"is_primary"`
	CreatedAt    time.Time `db:"created_at"`
}
