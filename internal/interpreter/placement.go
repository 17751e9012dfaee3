package interpreter

import (
	"encoding/json"
	"fmt"
	"os"

	"toyrobot/internal/robot"
)

// LoadPlacement reads a placement record from a JSON file.
// Format: {"x": 0, "y": 0, "direction": "north"}

func LoadPlacement(path string) (x, y int, direction string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, "", err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, 0, "", fmt.Errorf("%w: %v", robot.ErrInvalidInput, err)
	}
	return robot.PlacementFromRecord(v)
}
