package reference

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// SearchResult pairs a catalog entry with its match score.
type SearchResult struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
}

// Index is a full-text index over the API catalog with an exact-name fast
// path. Safe for concurrent reads after construction.
type Index struct {
	index  bleve.Index
	byName map[string]Entry
}

// NewIndex builds an in-memory index over the built-in catalog.
func NewIndex() (*Index, error) {
	return NewIndexFor(Entries())
}

// NewIndexFor builds an in-memory index over the given entries.
func NewIndexFor(entries []Entry) (*Index, error) {
	index, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("creating reference index: %w", err)
	}

	byName := make(map[string]Entry, len(entries))

	batch := index.NewBatch()
	for _, e := range entries {
		byName[strings.ToLower(e.Name)] = e
		if err := batch.Index(e.Name, entryDocument(e)); err != nil {
			index.Close()
			return nil, fmt.Errorf("indexing %s: %w", e.Name, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("committing reference index: %w", err)
	}

	return &Index{index: index, byName: byName}, nil
}

func buildMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	textMapping := bleve.NewTextFieldMapping()
	textMapping.Analyzer = "standard"
	textMapping.Store = true
	textMapping.Index = true

	keywordMapping := bleve.NewTextFieldMapping()
	keywordMapping.Analyzer = "keyword"
	keywordMapping.Store = true
	keywordMapping.Index = true

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", textMapping)
	docMapping.AddFieldMappingsAt("signature", textMapping)
	docMapping.AddFieldMappingsAt("summary", textMapping)
	docMapping.AddFieldMappingsAt("category", keywordMapping)
	docMapping.AddFieldMappingsAt("tags", keywordMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

func entryDocument(e Entry) map[string]interface{} {
	return map[string]interface{}{
		"name":      e.Name,
		"signature": e.Signature,
		"summary":   e.Summary,
		"category":  e.Category,
		"tags":      e.Tags,
	}
}

// Lookup returns the entry with the exact (case-insensitive) name, skipping
// the full-text machinery.
func (i *Index) Lookup(name string) (Entry, bool) {
	e, ok := i.byName[strings.ToLower(name)]
	return e, ok
}

// Search runs a query-string search over the catalog. An exact name match
// always leads the results regardless of its text score. Limit <= 0 means 10.
func (i *Index) Search(queryStr string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []SearchResult
	seen := map[string]bool{}

	if exact, ok := i.Lookup(strings.TrimSpace(queryStr)); ok {
		results = append(results, SearchResult{Entry: exact, Score: 1})
		seen[exact.Name] = true
	}

	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(queryStr), limit, 0, false)
	req.Fields = []string{"name", "signature", "summary", "category", "tags"}

	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("reference search failed: %w", err)
	}

	for _, hit := range res.Hits {
		if len(results) >= limit {
			break
		}
		if seen[hit.ID] {
			continue
		}
		entry, ok := i.byName[strings.ToLower(hit.ID)]
		if !ok {
			continue
		}
		seen[hit.ID] = true
		results = append(results, SearchResult{Entry: entry, Score: hit.Score})
	}

	return results, nil
}

// Close releases the underlying index.
func (i *Index) Close() error {
	return i.index.Close()
}
