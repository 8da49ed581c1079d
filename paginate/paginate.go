// Package paginate splits a sheet's rows into fixed-size catalog pages.
package paginate

import (
	"fmt"
	"strconv"
)

// DefaultSize is the target number of rows per catalog file.
const DefaultSize = 150

// Page is a half-open range [Start, End) of row positions.
type Page struct {
	// Number is 1-based.
	Number int
	Start  int
	End    int
}

// Len returns the number of rows in the page.
func (p Page) Len() int {
	return p.End - p.Start
}

// Split partitions n rows into pages of roughly size rows.
//
// Fewer than size rows give a single page (even when n is 0). Otherwise a
// remainder of at least half a page gets its own page; a smaller remainder
// is spread by growing every page by ceil(mod/pages) rows, with the last
// page taking whatever is left.
func Split(n, size int) []Page {
	if size <= 0 {
		size = DefaultSize
	}

	pageSize := size
	count := n / size
	if count == 0 {
		count = 1
		pageSize = n
	} else {
		mod := n % size
		if 2*mod >= size {
			count++
		} else {
			pageSize += (mod + count - 1) / count
		}
	}

	pages := make([]Page, 0, count)
	for i := 0; i < count; i++ {
		start := min(i*pageSize, n)
		end := min((i+1)*pageSize, n)
		pages = append(pages, Page{Number: i + 1, Start: start, End: end})
	}
	return pages
}

// Label renders a page number zero-padded to two digits, or wider when
// count needs more digits so every label of a sheet has the same width.
func Label(number, count int) string {
	width := max(2, len(strconv.Itoa(count)))
	return fmt.Sprintf("%0*d", width, number)
}
