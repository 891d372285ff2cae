package database

import (
	"context"

	"github.com/mycorp/alta-soporte/internal/entity"
)

// StaticDocumentTypes is the fallback reference table used when no database
// is configured, in the same order the table would return.
type StaticDocumentTypes struct{}

func NewStaticDocumentTypes() *StaticDocumentTypes {
	return &StaticDocumentTypes{}
}

func (s *StaticDocumentTypes) List(_ context.Context) ([]entity.ValueCode, error) {
	return []entity.ValueCode{
		{Code: "1", Value: "NIF"},
		{Code: "2", Value: "NIE"},
		{Code: "3", Value: "CIF"},
		{Code: "4", Value: "Pasaporte"},
		{Code: "5", Value: "Tarjeta de residencia"},
	}, nil
}
