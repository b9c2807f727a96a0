package postgres

import "opinator/internal/domain/repository"

// orderClause builds a safe ORDER BY fragment from a page query. The logical
// sort key is mapped through the repository's column whitelist; anything not
// in the whitelist falls back to the default column, so caller input is never
// interpolated into SQL.
func orderClause(columns map[string]string, q repository.PageQuery, defaultColumn string) string {
	column, ok := columns[q.SortBy]
	if !ok {
		column = defaultColumn
	}

	direction := "ASC"
	if q.SortDir == repository.SortDesc {
		direction = "DESC"
	}

	return column + " " + direction
}
