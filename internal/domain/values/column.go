package values

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// MarshalColumn serializes a composite value for a jsonb column.
func MarshalColumn(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// UnmarshalColumn reads a jsonb column into dst. An empty column is left
// alone so the caller's defaults survive.
func UnmarshalColumn(data datatypes.JSON, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
