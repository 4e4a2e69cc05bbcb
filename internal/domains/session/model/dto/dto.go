package dto

import (
	"clockwise/internal/domains/session/model"
	gDto "clockwise/shared/dto"
)

type AddClockRequest struct {
	Label string `json:"label" validate:"required,max=64"`
}

type SessionResponse struct {
	Labels    []string `json:"labels"`
	Count     int      `json:"count"`
	MaxClocks int      `json:"max_clocks"`
	CanAdd    bool     `json:"can_add"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(session *model.Session) {
	r.Labels = session.List()
	r.Count = session.Len()
	r.MaxClocks = model.MaxClocks
	r.CanAdd = session.CanAdd()
	r.Metadata.FromModel(session.Metadata)
}
