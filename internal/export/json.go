package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

func WriteJSON(w io.Writer, export *ViewExport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
