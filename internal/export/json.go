package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/banklar/banklar/internal/model"
)

// JSON writes the full snapshot as an indented backup. Decimal fields are
// serialized as strings, so the round trip is lossless.
func JSON(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// ReadJSON parses a backup produced by JSON, for restore.
func ReadJSON(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding backup: %w", err)
	}
	return snap, nil
}
