package values

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a numeric form field. The UI sends numbers both as JSON
// numbers and as text ("12.5", ""); an empty or missing value decodes
// with Valid=false so required fields can fall back to zero and optional
// ones to nil. A Number is never NaN.
type Number struct {
	Float64 float64
	Valid   bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*n = Number{}
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", str)
		}
		*n = Number{Float64: f, Valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number{Float64: f, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// Or returns the value, or def when the field was empty.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Float64
}

// Ptr returns the value for optional fields: nil when empty or absent.
func (n *Number) Ptr() *float64 {
	if n == nil || !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

// DimensionsInput is the form-facing dimension set with coercible
// numeric fields.
type DimensionsInput struct {
	Height Number  `json:"height"`
	Width  Number  `json:"width"`
	Depth  *Number `json:"depth,omitempty"`
	Unit   Unit    `json:"unit"`
}

// Dimensions coerces the input. Empty required fields become 0; an empty
// optional depth is dropped. The unit default is left to the persistence
// mapper so it is applied in exactly one place.
func (in DimensionsInput) Dimensions() Dimensions {
	return Dimensions{
		Height: in.Height.Or(0),
		Width:  in.Width.Or(0),
		Depth:  in.Depth.Ptr(),
		Unit:   in.Unit,
	}
}
