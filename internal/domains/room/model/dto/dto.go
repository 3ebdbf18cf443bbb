package dto

import (
	"posada/internal/domains/room/model"
	"posada/shared"
	gDto "posada/shared/dto"
)

type RoomResponse struct {
	ID                        string   `json:"id"`
	RoomNumber                string   `json:"roomNumber"`
	RoomType                  string   `json:"roomType"`
	Floor                     int      `json:"floor"`
	Capacity                  int      `json:"capacity"`
	PricePerNight             float64  `json:"pricePerNight"`
	PricePerHour              float64  `json:"pricePerHour"`
	ExtraPersonChargePerNight float64  `json:"extraPersonChargePerNight"`
	Status                    string   `json:"status"`
	Description               *string  `json:"description,omitempty"`
	Amenities                 []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.RoomType = mod.RoomType
	r.Floor = mod.Floor
	r.Capacity = mod.Capacity
	r.PricePerNight = mod.PricePerNight
	r.PricePerHour = mod.PricePerHour
	r.ExtraPersonChargePerNight = mod.ExtraPersonChargePerNight
	r.Status = mod.Status
	r.Description = mod.Description
	r.Amenities = mod.Amenities
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
