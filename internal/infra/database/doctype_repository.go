package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mycorp/alta-soporte/internal/entity"
)

// DocumentTypeRepository serves the ordered document-type reference table.
// Order matters downstream: label translation walks the list front to back
// and every matching code accumulates.
type DocumentTypeRepository struct {
	db *sql.DB
}

func NewDocumentTypeRepository(db *sql.DB) *DocumentTypeRepository {
	return &DocumentTypeRepository{db: db}
}

func (r *DocumentTypeRepository) List(ctx context.Context) ([]entity.ValueCode, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT codigo, descripcion FROM gen_tipos_documento ORDER BY orden, codigo`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar tipos de documento: %w", err)
	}
	defer rows.Close()

	var tipos []entity.ValueCode
	for rows.Next() {
		var vc entity.ValueCode
		if err := rows.Scan(&vc.Code, &vc.Value); err != nil {
			return nil, err
		}
		tipos = append(tipos, vc)
	}

	return tipos, rows.Err()
}
