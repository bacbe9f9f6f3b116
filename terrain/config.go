package terrain

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tableFile is the YAML layout of a cost table:
//
//	costs:
//	  grass: 0.5425
//	  mud: 0.4804
type tableFile struct {
	Costs map[string]float64 `yaml:"costs"`
}

// ParseCostTable decodes and validates a YAML cost table.
func ParseCostTable(data []byte) (CostTable, error) {
	return DecodeCostTable(bytes.NewReader(data))
}

// DecodeCostTable reads a YAML cost table from r. Unknown top-level keys are
// rejected. An empty document yields ErrEmptyTable. The caller owns r.
func DecodeCostTable(r io.Reader) (CostTable, error) {
	var raw tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("terrain: decode cost table: %w", err)
	}

	return fromFile(raw)
}

// MarshalCostTable encodes t in the layout ParseCostTable accepts.
func MarshalCostTable(t CostTable) ([]byte, error) {
	raw := tableFile{Costs: make(map[string]float64, len(t))}
	for l, c := range t {
		raw.Costs[string(l)] = c
	}

	return yaml.Marshal(raw)
}

func fromFile(raw tableFile) (CostTable, error) {
	t := make(CostTable, len(raw.Costs))
	for l, c := range raw.Costs {
		t[Label(l)] = c
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}
