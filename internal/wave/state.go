package wave

import (
	"encoding/json"
	"os"
)

// LoadWaves reads saved waves from a JSON file. Returns an empty set if
// the file doesn't exist.
func LoadWaves(filePath string) ([]*Wave, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var waves []*Wave
	if err := json.Unmarshal(data, &waves); err != nil {
		return nil, err
	}
	return waves, nil
}

// SaveWaves writes the waves to a JSON file.
func SaveWaves(filePath string, waves []*Wave) error {
	data, err := json.MarshalIndent(waves, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
