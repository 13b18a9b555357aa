package oteladapters

import (
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// attributesFrom converts string labels to attributes, sorted by key so that equal label sets
// always produce the same attribute set.
func attributesFrom(labels map[string]string) []attribute.KeyValue {
	if len(labels) == 0 {
		return nil
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, attribute.String(k, labels[k]))
	}

	return attrs
}
