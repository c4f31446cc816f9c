package dataset

import "ferreteria.lasu.pe/internal/flatfile"

// PageCount returns ceil(n/size), never less than 1: an empty row set
// still displays as a single empty page so the navigation controls have
// somewhere to stand.
func PageCount(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices rows for a 1-based page number and fixed page size:
// rows[(page-1)*size : page*size], clamped to the slice bounds.
func Paginate(rows []flatfile.Row, page, size int) []flatfile.Row {
	if page < 1 || size <= 0 {
		return []flatfile.Row{}
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []flatfile.Row{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
