package dto

import (
	"posada/shared/constant"
	"posada/shared/model"
	"posada/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}

type AuditMetadata struct {
	Metadata
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

func (m *AuditMetadata) FromModel(model model.AuditMetadata) {
	m.Metadata.FromModel(model.Metadata)
	m.CreatedBy = model.CreatedBy
	m.UpdatedBy = model.UpdatedBy
}
