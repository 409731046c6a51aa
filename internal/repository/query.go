// Package repository provides data access layer implementations for the application.
package repository

import (
	"gorm.io/gorm"
)

// ArticleQuery is a fully resolved article listing request: optional
// predicates plus the page window. The service layer builds it from request
// filters (resolving usernames to ids and favorite sets to article ids), so
// execution needs no further lookups.
//
// MatchNone marks a filter that resolved to the empty set (unknown username,
// empty favorites set). It must restrict the query to zero rows rather than
// fall through to the unfiltered listing.
type ArticleQuery struct {
	Tag        string
	AuthorIDs  []uint
	ArticleIDs []uint
	MatchNone  bool
	Limit      int
	Offset     int
}

// apply adds the query's predicates to db. Ordering and the page window are
// the executor's concern: the row count of the filtered set is taken before
// pagination.
func (q ArticleQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Tag != "" {
		// Exact membership in the comma-joined tag column. Wrapping both
		// sides with the delimiter keeps "dragon" from matching "dragons".
		db = db.Where("',' || tag_list || ',' LIKE ?", "%,"+q.Tag+",%")
	}
	if len(q.AuthorIDs) > 0 {
		db = db.Where("author_id IN ?", q.AuthorIDs)
	}
	if len(q.ArticleIDs) > 0 {
		db = db.Where("id IN ?", q.ArticleIDs)
	}
	return db
}

// page applies the limit/offset window, only when provided.
func (q ArticleQuery) page(db *gorm.DB) *gorm.DB {
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	return db
}
