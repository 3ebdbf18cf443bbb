package model

import (
	"posada/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                        = "id"
	FieldRoomNumber                = "room_number"
	FieldRoomType                  = "room_type"
	FieldFloor                     = "floor"
	FieldCapacity                  = "capacity"
	FieldPricePerNight             = "price_per_night"
	FieldPricePerHour              = "price_per_hour"
	FieldExtraPersonChargePerNight = "extra_person_charge_per_night"
	FieldStatus                    = "status"
	FieldDescription               = "description"
	FieldAmenities                 = "amenities"
)

const (
	TypeSingle   = "single"
	TypeDouble   = "double"
	TypeFamiliar = "familiar"
)

type Room struct {
	ID                        string         `db:"id"`
	RoomNumber                string         `db:"room_number"`
	RoomType                  string         `db:"room_type"`
	Floor                     int            `db:"floor"`
	Capacity                  int            `db:"capacity"`
	PricePerNight             float64        `db:"price_per_night"`
	PricePerHour              float64        `db:"price_per_hour"`
	ExtraPersonChargePerNight float64        `db:"extra_person_charge_per_night"`
	Status                    string         `db:"status"`
	Description               *string        `db:"description"`
	Amenities                 pq.StringArray `db:"amenities"`
	model.Metadata
	model.SoftDelete
}
