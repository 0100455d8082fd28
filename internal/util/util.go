package util

import (
	"encoding/json"
	"fmt"
	"io"
)

func FloatPointer(f float64) *float64 {
	return &f
}

func WriteJSON(w io.Writer, i interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(i); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
