// Package manual loads collaborator-maintained seminar entries from a
// YAML file. Manual entries cover listings no adapter understands and
// one-off workshops; they join the scraped events at merge time and
// compete on completeness like any other candidate.
package manual

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bostontheory/events/internal/event"
)

// document is the file layout: a top-level "events" sequence in the
// canonical schema.
type document struct {
	Events []event.Event `yaml:"events"`
}

// Load reads manual events from path. A missing file is not an error;
// most checkouts never create one.
func Load(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading manual events: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manual events: %w", err)
	}
	return doc.Events, nil
}
