package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for entry documents.
//
// Title and body get the English analyzer for stemmed full-text search;
// shelf code, mood, and tags use the keyword analyzer for exact filters;
// created_at is numeric for recency sorting.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Title - primary search target, stored for display.
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = en.AnalyzerName
	titleFieldMapping.Store = true
	titleFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)

	// Body - searchable, term vectors for highlighted snippets.
	bodyFieldMapping := bleve.NewTextFieldMapping()
	bodyFieldMapping.Analyzer = en.AnalyzerName
	bodyFieldMapping.Store = true
	bodyFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("body", bodyFieldMapping)

	// Author name - searchable, stored.
	authorFieldMapping := bleve.NewTextFieldMapping()
	authorFieldMapping.Analyzer = en.AnalyzerName
	authorFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("author_name", authorFieldMapping)

	// Shelf label - searchable so "grief" finds the Grief Poetry shelf.
	shelfLabelFieldMapping := bleve.NewTextFieldMapping()
	shelfLabelFieldMapping.Analyzer = en.AnalyzerName
	shelfLabelFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("shelf_label", shelfLabelFieldMapping)

	// Shelf code - exact match filter.
	shelfCodeFieldMapping := bleve.NewTextFieldMapping()
	shelfCodeFieldMapping.Analyzer = keyword.Name
	shelfCodeFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("shelf_code", shelfCodeFieldMapping)

	// ID - stored but not analyzed.
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Mood - exact match filter.
	moodFieldMapping := bleve.NewTextFieldMapping()
	moodFieldMapping.Analyzer = keyword.Name
	moodFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("mood", moodFieldMapping)

	// Tags - keyword analyzer keeps compound tags intact.
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	// Timestamp - for recency sorting.
	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
