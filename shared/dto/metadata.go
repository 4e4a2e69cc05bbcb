package dto

import (
	"clockwise/shared/constant"
	"clockwise/shared/model"
	"clockwise/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

// FromModel renders the timestamps in the application timezone.
func (m *Metadata) FromModel(model model.Metadata) {
	loc := timezone.GetLocation()

	m.CreatedAt = model.CreatedAt.In(loc).Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.In(loc).Format(constant.DateFormat)
}
