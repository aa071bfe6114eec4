package happyhourd

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	blevequery "github.com/blevesearch/bleve/v2/search/query"
)

// Indexer defines the search index interface. The index is derived
// state: it is rebuilt in full whenever the venue store changes
// identity (in practice once, at startup), never updated in place.
type Indexer interface {
	Rebuild(ctx context.Context, venues []*Venue) error
	Search(ctx context.Context, query SearchQuery) ([]Hit, error)
	Close() error
}

// BleveIndexer implements Indexer using an in-memory Bleve index.
type BleveIndexer struct {
	index bleve.Index
}

var _ Indexer = (*BleveIndexer)(nil)

// venueDoc is the document structure indexed by Bleve. It is a
// read-only projection of Venue; the mapping functions below are the
// only places where the two shapes meet, so the doc shape never leaks
// into consumer code.
type venueDoc struct {
	Name         string `json:"name"`
	DealText     string `json:"deal_text"`
	Neighborhood string `json:"neighborhood"`
	Cuisine      string `json:"cuisine"`
	Drinks       string `json:"drinks"`
	Food         string `json:"food"`

	// Keyword copies for exact-match filtering.
	NeighborhoodFacet string `json:"neighborhood_facet"`
	CuisineFacet      string `json:"cuisine_facet"`

	// Stored but not searched; they back the snapshot a hit carries
	// so the engine can post-filter and rank on index data alone when
	// a hit's ID has drifted out of the store.
	Days      string `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	PriceLevel float64 `json:"price_level"`
	Rating     float64 `json:"rating"`
}

// searchableFields are the text fields a free-text term runs against.
var searchableFields = []string{"name", "deal_text", "neighborhood", "cuisine", "drinks", "food"}

// tagSep joins list-of-string fields into a single indexed string and
// splits them back out of stored snapshots.
const tagSep = "; "

// NewBleveIndexer creates an empty in-memory Bleve index with the
// venue document mapping. Call Rebuild to populate it.
func NewBleveIndexer() (*BleveIndexer, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}
	return &BleveIndexer{index: idx}, nil
}

// buildIndexMapping creates the Bleve index mapping: analyzed text
// fields for search, keyword fields for equality filters, numeric
// fields for the price ceiling and rating. Everything is stored so
// hits can carry a full snapshot.
func buildIndexMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = "en"
	textField.Store = true

	for _, field := range searchableFields {
		docMapping.AddFieldMappingsAt(field, textField)
	}

	keywordField := bleve.NewKeywordFieldMapping()
	keywordField.Store = true
	docMapping.AddFieldMappingsAt("neighborhood_facet", keywordField)
	docMapping.AddFieldMappingsAt("cuisine_facet", keywordField)
	docMapping.AddFieldMappingsAt("days", keywordField)
	docMapping.AddFieldMappingsAt("start_time", keywordField)
	docMapping.AddFieldMappingsAt("end_time", keywordField)

	numericField := bleve.NewNumericFieldMapping()
	numericField.Store = true
	docMapping.AddFieldMappingsAt("price_level", numericField)
	docMapping.AddFieldMappingsAt("rating", numericField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Rebuild replaces the index contents with the given venues in a
// single batch. The previous in-memory index is discarded.
func (bi *BleveIndexer) Rebuild(_ context.Context, venues []*Venue) error {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create bleve index: %w", err)
	}

	batch := idx.NewBatch()
	for _, v := range venues {
		if err := batch.Index(v.ID, venueToDoc(v)); err != nil {
			return fmt.Errorf("batch index %s: %w", v.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return fmt.Errorf("index batch: %w", err)
	}

	old := bi.index
	bi.index = idx
	if old != nil {
		// Best-effort close of the replaced in-memory index.
		_ = old.Close()
	}
	return nil
}

// Search executes a text search with structured filters and returns
// hits with stored-field snapshots. Results are relevance ranked by
// Bleve and capped at the query limit (default 100); the engine
// re-sorts them by its own contract afterwards.
func (bi *BleveIndexer) Search(_ context.Context, query SearchQuery) ([]Hit, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	q := buildTextQuery(query.Text)

	if query.Neighborhood != "" {
		filter := bleve.NewTermQuery(query.Neighborhood)
		filter.SetField("neighborhood_facet")
		q = bleve.NewConjunctionQuery(q, filter)
	}
	if query.Cuisine != "" {
		filter := bleve.NewTermQuery(query.Cuisine)
		filter.SetField("cuisine_facet")
		q = bleve.NewConjunctionQuery(q, filter)
	}
	if query.MaxPrice > 0 {
		ceiling := float64(query.MaxPrice)
		inclusive := true
		filter := bleve.NewNumericRangeInclusiveQuery(nil, &ceiling, nil, &inclusive)
		filter.SetField("price_level")
		q = bleve.NewConjunctionQuery(q, filter)
	}

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.Fields = []string{"*"}

	results, err := bi.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search: %w", err)
	}

	hits := make([]Hit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		hits = append(hits, Hit{
			ID:       hit.ID,
			Score:    hit.Score,
			Snapshot: docToVenue(hit.ID, hit.Fields),
		})
	}
	return hits, nil
}

// Close closes the underlying Bleve index.
func (bi *BleveIndexer) Close() error {
	return bi.index.Close()
}

// buildTextQuery combines, per searchable field, a match query for
// the full text with a prefix query per token, all OR'd together. The
// prefix queries are what make short partial terms like "tac" land on
// "Taco Joint".
func buildTextQuery(text string) blevequery.Query {
	tokens := strings.Fields(strings.ToLower(text))

	queries := make([]blevequery.Query, 0, len(searchableFields)*(len(tokens)+1))
	for _, field := range searchableFields {
		mq := bleve.NewMatchQuery(text)
		mq.SetField(field)
		queries = append(queries, mq)

		for _, tok := range tokens {
			pq := bleve.NewPrefixQuery(tok)
			pq.SetField(field)
			queries = append(queries, pq)
		}
	}
	return bleve.NewDisjunctionQuery(queries...)
}

// venueToDoc converts a venue to the indexed document format.
func venueToDoc(v *Venue) venueDoc {
	return venueDoc{
		Name:              v.Name,
		DealText:          v.DealText,
		Neighborhood:      v.Neighborhood,
		Cuisine:           v.Cuisine,
		Drinks:            strings.Join(v.Drinks, tagSep),
		Food:              strings.Join(v.Food, tagSep),
		NeighborhoodFacet: v.Neighborhood,
		CuisineFacet:      v.Cuisine,
		Days:              strings.Join(v.Days, tagSep),
		StartTime:         v.StartTime,
		EndTime:           v.EndTime,
		PriceLevel:        float64(v.PriceLevel),
		Rating:            v.Rating,
	}
}

// docToVenue reconstructs a venue snapshot from a hit's stored
// fields. It is the inverse of venueToDoc for everything the engine
// needs to filter and rank a drifted hit.
func docToVenue(id string, fields map[string]interface{}) *Venue {
	v := &Venue{
		ID:           id,
		Name:         fieldString(fields, "name"),
		DealText:     fieldString(fields, "deal_text"),
		Neighborhood: fieldString(fields, "neighborhood"),
		Cuisine:      fieldString(fields, "cuisine"),
		Drinks:       splitTags(fieldString(fields, "drinks")),
		Food:         splitTags(fieldString(fields, "food")),
		Days:         splitTags(fieldString(fields, "days")),
		StartTime:    fieldString(fields, "start_time"),
		EndTime:      fieldString(fields, "end_time"),
		PriceLevel:   int(fieldFloat(fields, "price_level")),
		Rating:       fieldFloat(fields, "rating"),
	}
	return v
}

func fieldString(fields map[string]interface{}, name string) string {
	if s, ok := fields[name].(string); ok {
		return s
	}
	return ""
}

func fieldFloat(fields map[string]interface{}, name string) float64 {
	if f, ok := fields[name].(float64); ok {
		return f
	}
	return 0
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, tagSep)
}
