package validator

import (
	"path"
	"strings"

	"github.com/tschaub/stac-validator/schema"
)

// DetectType returns the document type (schema.TypeItem, TypeCatalog, or
// TypeCollection) for doc, using ref as a filename hint. The heuristic, in
// order:
//
//  1. An explicit "type" field: "Feature" and "Item" mean item; "Catalog"
//     and "Collection" mean themselves.
//  2. The reference's file name: a name containing "catalog", "collection",
//     or "item" decides the type.
//  3. A document declaring "child" or "item" links is a catalog; anything
//     else is treated as an item.
func DetectType(ref string, doc map[string]any) string {
	if t, ok := doc["type"].(string); ok {
		switch strings.ToLower(t) {
		case "feature", "item":
			return schema.TypeItem
		case "catalog":
			return schema.TypeCatalog
		case "collection":
			return schema.TypeCollection
		}
	}

	name := strings.ToLower(path.Base(ref))
	switch {
	case strings.Contains(name, "catalog"):
		return schema.TypeCatalog
	case strings.Contains(name, "collection"):
		return schema.TypeCollection
	case strings.Contains(name, "item"):
		return schema.TypeItem
	}

	for _, link := range documentLinks(doc) {
		rel, _ := link["rel"].(string)
		if rel == "child" || rel == "item" {
			return schema.TypeCatalog
		}
	}
	return schema.TypeItem
}

// documentLinks returns the entries of the document's links array that are
// JSON objects, in declaration order.
func documentLinks(doc map[string]any) []map[string]any {
	raw, ok := doc["links"].([]any)
	if !ok {
		return nil
	}
	links := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if link, ok := entry.(map[string]any); ok {
			links = append(links, link)
		}
	}
	return links
}
