package extract

import (
	"strconv"
	"strings"
)

// IndexRef is the payload behind an "id:" lookup key.
type IndexRef struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	FullPath string `json:"full_path"`
}

// BuildLookupIndex derives the flat lookup table for a record collection.
// Three key namespaces share one map: "id:<id>" resolves to an IndexRef,
// "path:<fullPath>" resolves to a record id (first writer wins when paths
// collide), and "token:<token>" resolves to every matching record id in
// processing order. Token keys are lowercased; token lists are neither
// deduplicated nor sorted.
func BuildLookupIndex(records []*Record) map[string]any {
	index := make(map[string]any, len(records)*3)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		index["id:"+strconv.Itoa(rec.ID)] = IndexRef{
			Name:     rec.Name,
			Kind:     rec.Kind,
			FullPath: rec.FullPath,
		}
		pathKey := "path:" + rec.FullPath
		if _, exists := index[pathKey]; !exists {
			index[pathKey] = rec.ID
		}
		for _, token := range rec.SearchTokens {
			tokenKey := "token:" + strings.ToLower(token)
			ids, _ := index[tokenKey].([]int)
			index[tokenKey] = append(ids, rec.ID)
		}
	}
	return index
}
