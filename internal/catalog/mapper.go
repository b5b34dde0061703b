package catalog

import (
	"encoding/json"
	"fmt"
)

// The storage column is product_variants (jsonb); everything above the
// repository only ever sees the canonical ProductVariants field. This
// mapping runs exactly once per record, here.

func marshalVariants(variants []ProductVariant) ([]byte, error) {
	if variants == nil {
		variants = []ProductVariant{}
	}
	return json.Marshal(variants)
}

func unmarshalVariants(raw []byte) ([]ProductVariant, error) {
	if len(raw) == 0 {
		return []ProductVariant{}, nil
	}

	var variants []ProductVariant
	if err := json.Unmarshal(raw, &variants); err != nil {
		return nil, fmt.Errorf("failed to decode product_variants: %w", err)
	}
	if variants == nil {
		variants = []ProductVariant{}
	}
	return variants, nil
}
