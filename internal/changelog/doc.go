// Package changelog turns a stream of raw commits into a rendered
// changelog document.
//
// This package implements:
//   - Aggregation: a single forward pass over the commit stream, classifying
//     each commit and grouping matches into sections ordered by the grammar
//   - The synthetic breaking-changes section, always rendered first
//   - Markdown rendering of the grouped sections
//
// The aggregator consumes commits through a pull iterator and never
// materializes full history; memory is bounded by the grouped output.
package changelog
