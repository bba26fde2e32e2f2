package tables

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

// layoutFile формат YAML-файла со схемой зала
type layoutFile struct {
	Tables []models.Table `yaml:"tables"`
}

// ParseLayout читает схему зала из YAML
//
//	tables:
//	  - id: in-1
//	    name: Table 1
//	    area: inside
//	    capacity: {min: 2, max: 4}
//	    position: {x: 100, y: 80}
func ParseLayout(r io.Reader) (*models.ReplaceLayoutRequest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file layoutFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrInvalidInput, err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("%w: layout has no tables", ErrInvalidInput)
	}

	return &models.ReplaceLayoutRequest{Tables: file.Tables}, nil
}
