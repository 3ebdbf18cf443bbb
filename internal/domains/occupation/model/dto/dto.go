package dto

import (
	"fmt"
	"posada/internal/domains/occupation/model"
	"posada/shared"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/mapping"
	gModel "posada/shared/model"
	"posada/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// Fields is the single source of truth for translating occupation API fields
// into database columns. Sparse update payloads go through it unchanged.
var Fields = mapping.FieldMap{
	"roomId":           model.FieldRoomID,
	"checkInDatetime":  model.FieldCheckInDatetime,
	"checkOutDatetime": model.FieldCheckOutDatetime,
	"stayType":         model.FieldStayType,
	"numberOfGuests":   model.FieldNumberOfGuests,
	"basePrice":        model.FieldBasePrice,
	"discountAmount":   model.FieldDiscountAmount,
	"totalPrice":       model.FieldTotalPrice,
	"status":           model.FieldStatus,
	"notes":            model.FieldNotes,
}

// CreateAllowedFields is the allow list for reservation creation. Anything
// outside it is dropped before the payload reaches persistence.
var CreateAllowedFields = []string{
	"roomId",
	"checkInDatetime",
	"checkOutDatetime",
	"stayType",
	"numberOfGuests",
	"totalPrice",
	"guests",
}

type GuestAssignment struct {
	GuestID   string `json:"guestId"`
	IsPrimary bool   `json:"isPrimary"`
}

type CreateOccupationRequest struct {
	RoomID           string
	CheckInDatetime  string
	CheckOutDatetime string
	StayType         string
	NumberOfGuests   int
	TotalPrice       float64
	Guests           []GuestAssignment
}

// CreateRequestFromPayload lifts an already validated payload into the typed
// request. Values carry the loose types of decoded JSON.
func CreateRequestFromPayload(payload map[string]any) CreateOccupationRequest {
	req := CreateOccupationRequest{
		RoomID:           asString(payload["roomId"]),
		CheckInDatetime:  asString(payload["checkInDatetime"]),
		CheckOutDatetime: asString(payload["checkOutDatetime"]),
		StayType:         asString(payload["stayType"]),
		NumberOfGuests:   int(asFloat(payload["numberOfGuests"])),
		TotalPrice:       asFloat(payload["totalPrice"]),
	}

	rawGuests, _ := payload["guests"].([]any)
	for _, rawGuest := range rawGuests {
		guest, _ := rawGuest.(map[string]any)
		isPrimary, _ := guest["isPrimary"].(bool)

		req.Guests = append(req.Guests, GuestAssignment{
			GuestID:   asString(guest["guestId"]),
			IsPrimary: isPrimary,
		})
	}

	return req
}

func (c *CreateOccupationRequest) ToModel(user string) (model.Occupation, error) {
	checkIn, err := ParseDatetime(c.CheckInDatetime)
	if err != nil {
		return model.Occupation{}, fmt.Errorf("invalid checkInDatetime: %w", err)
	}

	checkOut, err := ParseDatetime(c.CheckOutDatetime)
	if err != nil {
		return model.Occupation{}, fmt.Errorf("invalid checkOutDatetime: %w", err)
	}

	now := timezone.Now()

	return model.Occupation{
		ID:               uuid.NewString(),
		RoomID:           c.RoomID,
		CheckInDatetime:  checkIn,
		CheckOutDatetime: checkOut,
		StayType:         c.StayType,
		NumberOfGuests:   c.NumberOfGuests,
		TotalPrice:       c.TotalPrice,
		Status:           model.StatusReserved,
		AuditMetadata: gModel.AuditMetadata{
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
			CreatedBy: user,
			UpdatedBy: user,
		},
	}, nil
}

// GuestLinks materializes the join rows for the created occupation.
func (c *CreateOccupationRequest) GuestLinks(occupationID string) []model.OccupationGuest {
	links := make([]model.OccupationGuest, len(c.Guests))
	for i, guest := range c.Guests {
		links[i] = model.OccupationGuest{
			ID:           uuid.NewString(),
			OccupationID: occupationID,
			GuestID:      guest.GuestID,
			IsPrimary:    guest.IsPrimary,
			CreatedAt:    timezone.Now(),
		}
	}

	return links
}

// ParseDatetime accepts both offset-carrying and local datetime strings,
// interpreting the latter in the application timezone.
func ParseDatetime(value string) (time.Time, error) {
	if parsed, err := time.Parse(constant.DateFormat, value); err == nil {
		return parsed, nil
	}

	return timezone.Parse(constant.DatetimeLocalInput, value)
}

type RoomSummary struct {
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	Floor      int    `json:"floor"`
}

type OccupationGuestResponse struct {
	ID           string `json:"id"`
	OccupationID string `json:"occupationId"`
	GuestID      string `json:"guestId"`
	IsPrimary    bool   `json:"isPrimary"`
	CreatedAt    string `json:"createdAt"`
}

func (r *OccupationGuestResponse) FromModel(link model.OccupationGuest) {
	r.ID = link.ID
	r.OccupationID = link.OccupationID
	r.GuestID = link.GuestID
	r.IsPrimary = link.IsPrimary
	r.CreatedAt = timezone.Format(link.CreatedAt, constant.DateFormat)
}

type OccupationResponse struct {
	ID               string                    `json:"id"`
	RoomID           string                    `json:"roomId"`
	CheckInDatetime  string                    `json:"checkInDatetime"`
	CheckOutDatetime string                    `json:"checkOutDatetime"`
	StayType         string                    `json:"stayType"`
	NumberOfGuests   int                       `json:"numberOfGuests"`
	BasePrice        *float64                  `json:"basePrice,omitempty"`
	DiscountAmount   *float64                  `json:"discountAmount,omitempty"`
	TotalPrice       float64                   `json:"totalPrice"`
	Status           string                    `json:"status"`
	Notes            *string                   `json:"notes,omitempty"`
	Room             *RoomSummary              `json:"room,omitempty"`
	Guests           []OccupationGuestResponse `json:"guests,omitempty"`
	DeletedAt        string                    `json:"deletedAt,omitempty"`
	gDto.AuditMetadata
}

func (r *OccupationResponse) FromModel(mod model.Occupation) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.CheckInDatetime = timezone.Format(mod.CheckInDatetime, constant.DateFormat)
	r.CheckOutDatetime = timezone.Format(mod.CheckOutDatetime, constant.DateFormat)
	r.StayType = mod.StayType
	r.NumberOfGuests = mod.NumberOfGuests
	r.BasePrice = mod.BasePrice
	r.DiscountAmount = mod.DiscountAmount
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.AuditMetadata.FromModel(mod.AuditMetadata)

	if mod.DeletedAt != nil {
		r.DeletedAt = timezone.Format(*mod.DeletedAt, constant.DateFormat)
	}

	// Joined room columns are optional, hydration is skipped when absent.
	if mod.RoomNumber != nil {
		summary := RoomSummary{RoomNumber: *mod.RoomNumber}

		if mod.RoomType != nil {
			summary.RoomType = *mod.RoomType
		}

		if mod.RoomFloor != nil {
			summary.Floor = *mod.RoomFloor
		}

		r.Room = &summary
	}
}

func (r *OccupationResponse) WithGuests(links []model.OccupationGuest) {
	r.Guests = make([]OccupationGuestResponse, len(links))
	for i, link := range links {
		r.Guests[i].FromModel(link)
	}
}

type GetOccupationsResponse struct {
	Occupations []OccupationResponse `json:"occupations"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetOccupationsResponse) FromModels(models []model.Occupation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Occupations = make([]OccupationResponse, len(models))
	for i, mod := range models {
		r.Occupations[i].FromModel(mod)
	}
}

func asString(value any) string {
	str, _ := value.(string)

	return str
}

func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
