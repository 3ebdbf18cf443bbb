package model

import (
	"posada/shared/model"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID                    = "id"
	FieldFirstName             = "first_name"
	FieldLastName              = "last_name"
	FieldEmail                 = "email"
	FieldPhone                 = "phone"
	FieldDocumentType          = "document_type"
	FieldDocumentNumber        = "document_number"
	FieldOccupation            = "occupation"
	FieldNationality           = "nationality"
	FieldAddress               = "address"
	FieldEmergencyContactName  = "emergency_contact_name"
	FieldEmergencyContactPhone = "emergency_contact_phone"
	FieldSpecialRequests       = "special_requests"
	FieldTotalStays            = "total_stays"
	FieldLastStayDate          = "last_stay_date"
	FieldNotes                 = "notes"
	FieldIsActive              = "is_active"
)

const (
	DocumentTypePassport        = "Passport"
	DocumentTypeNationalID      = "National ID"
	DocumentTypeIdentityCard    = "Identity Card"
	DocumentTypeCitizenshipCard = "Citizenship Card"
)

type Guest struct {
	ID                    string     `db:"id"`
	FirstName             string     `db:"first_name"`
	LastName              string     `db:"last_name"`
	Email                 *string    `db:"email"`
	Phone                 *string    `db:"phone"`
	DocumentType          *string    `db:"document_type"`
	DocumentNumber        string     `db:"document_number"`
	Occupation            *string    `db:"occupation"`
	Nationality           *string    `db:"nationality"`
	Address               *string    `db:"address"`
	EmergencyContactName  *string    `db:"emergency_contact_name"`
	EmergencyContactPhone *string    `db:"emergency_contact_phone"`
	SpecialRequests       *string    `db:"special_requests"`
	TotalStays            int        `db:"total_stays"`
	LastStayDate          *time.Time `db:"last_stay_date"`
	Notes                 *string    `db:"notes"`
	IsActive              bool       `db:"is_active"`
	model.Metadata
}
