// Package page holds pagination arithmetic for page-numbered search results.
package page

// MaxSize is the largest page the search service returns, and the default page size.
const MaxSize = 250

// TotalPages returns ceil(found / perPage); 0 when nothing was found.
func TotalPages(found, perPage int) int {
	if found <= 0 || perPage <= 0 {
		return 0
	}
	return (found + perPage - 1) / perPage
}
