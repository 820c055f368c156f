package jsonfile

import (
	"strings"

	"github.com/riskibarqy/league-matches/internal/domain/league"
)

type manifestEntryModel struct {
	ID   string `json:"id" validate:"required"`
	File string `json:"file"`
	JSON string `json:"json"`
}

func (m manifestEntryModel) normalized() manifestEntryModel {
	return manifestEntryModel{
		ID:   strings.TrimSpace(m.ID),
		File: strings.TrimSpace(m.File),
		JSON: strings.TrimSpace(m.JSON),
	}
}

func (m manifestEntryModel) toDomain(name string, field league.FileField) league.League {
	file := m.File
	if field == league.FileFieldJSON {
		file = m.JSON
	}
	return league.League{
		Name: name,
		ID:   m.ID,
		File: file,
	}
}
