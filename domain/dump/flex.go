package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString accepts a JSON string or number. Quest requirement levels are
// favor names ("Comfortable") or skill levels (50) depending on the type.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// Int returns the numeric value, or false when the value is not a number
func (f FlexString) Int() (int, bool) {
	n, err := strconv.Atoi(string(f))
	return n, err == nil
}

// FlexStrings accepts a JSON string or an array of strings
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var many []string
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*f = many
		return nil
	default:
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("expected string or array of strings, got %s", data)
		}
		*f = FlexStrings{one}
		return nil
	}
}

// Requirements accepts a single requirement object or an array of them
type Requirements []QuestRequirement

func (r *Requirements) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var many []QuestRequirement
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*r = many
		return nil
	default:
		var one QuestRequirement
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*r = Requirements{one}
		return nil
	}
}
