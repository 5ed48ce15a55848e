package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/iliyamo/ticket-selector/internal/model"
)

// defaultFixture is the sample catalog compiled into the binary.  It is
// served when no external fixture file and no database are configured, so a
// bare `go run ./cmd/server` always has data to work with.
//
//go:embed fixtures/default.json
var defaultFixture []byte

// fixtureFile is the on-disk shape of a catalog fixture.  Prices appear as
// JSON strings ("20.40") so they parse into exact decimals without passing
// through a float.
type fixtureFile struct {
	Events []model.Event `json:"events"`
}

// LoadFixture reads and parses a catalog fixture.  When path is empty the
// embedded default fixture is used.  The returned events are not yet
// checked against catalog invariants; NewStore does that.
func LoadFixture(path string) ([]model.Event, error) {
	data := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read fixture: %w", err)
		}
		data = b
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse fixture: %w", err)
	}
	return f.Events, nil
}
