package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/utils/logger"
)

// LoadOddsTable reads a 10x10 JSON array of frequencies indexed
// [homeDigit][awayDigit]. An empty path gives the built-in table.
func LoadOddsTable(path string) (game.OddsTable, error) {
	if path == "" {
		return game.DefaultOddsTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return game.OddsTable{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return game.OddsTable{}, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	table, err := game.OddsTableFromRows(rows)
	if err != nil {
		return game.OddsTable{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Infof("[Init] Loaded odds table from %s", path)
	return table, nil
}
