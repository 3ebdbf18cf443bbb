package dto

import (
	"posada/internal/domains/guest/model"
	"posada/shared"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/mapping"
	gModel "posada/shared/model"
	"posada/shared/timezone"

	"github.com/google/uuid"
)

// Fields maps guest API fields onto guest columns for sparse updates.
var Fields = mapping.FieldMap{
	"firstName":             model.FieldFirstName,
	"lastName":              model.FieldLastName,
	"email":                 model.FieldEmail,
	"phone":                 model.FieldPhone,
	"documentType":          model.FieldDocumentType,
	"documentNumber":        model.FieldDocumentNumber,
	"occupation":            model.FieldOccupation,
	"nationality":           model.FieldNationality,
	"address":               model.FieldAddress,
	"emergencyContactName":  model.FieldEmergencyContactName,
	"emergencyContactPhone": model.FieldEmergencyContactPhone,
	"specialRequests":       model.FieldSpecialRequests,
	"notes":                 model.FieldNotes,
	"isActive":              model.FieldIsActive,
}

// CreateAllowedFields is the allow list for guest creation.
var CreateAllowedFields = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"documentType",
	"documentNumber",
	"occupation",
	"nationality",
}

// NewGuestModel builds the insert model from an extracted creation payload.
func NewGuestModel(payload map[string]any) model.Guest {
	now := timezone.Now()

	guest := model.Guest{
		ID:             uuid.NewString(),
		FirstName:      asString(payload["firstName"]),
		LastName:       asString(payload["lastName"]),
		Email:          asStringPtr(payload["email"]),
		Phone:          asStringPtr(payload["phone"]),
		DocumentType:   asStringPtr(payload["documentType"]),
		DocumentNumber: asString(payload["documentNumber"]),
		Occupation:     asStringPtr(payload["occupation"]),
		Nationality:    asStringPtr(payload["nationality"]),
		IsActive:       true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	return guest
}

type GuestResponse struct {
	ID                    string  `json:"id"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	DocumentType          *string `json:"documentType,omitempty"`
	DocumentNumber        string  `json:"documentNumber"`
	Occupation            *string `json:"occupation,omitempty"`
	Nationality           *string `json:"nationality,omitempty"`
	Address               *string `json:"address,omitempty"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	SpecialRequests       *string `json:"specialRequests,omitempty"`
	TotalStays            int     `json:"totalStays"`
	LastStayDate          *string `json:"lastStayDate,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	IsActive              bool    `json:"isActive"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.DocumentType = mod.DocumentType
	r.DocumentNumber = mod.DocumentNumber
	r.Occupation = mod.Occupation
	r.Nationality = mod.Nationality
	r.Address = mod.Address
	r.EmergencyContactName = mod.EmergencyContactName
	r.EmergencyContactPhone = mod.EmergencyContactPhone
	r.SpecialRequests = mod.SpecialRequests
	r.TotalStays = mod.TotalStays
	r.Notes = mod.Notes
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)

	if mod.LastStayDate != nil {
		formatted := timezone.Format(*mod.LastStayDate, constant.DateOnlyFormat)
		r.LastStayDate = &formatted
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

func asString(value any) string {
	str, _ := value.(string)

	return str
}

func asStringPtr(value any) *string {
	str, ok := value.(string)
	if !ok || str == "" {
		return nil
	}

	return &str
}
