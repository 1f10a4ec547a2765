package pagination

import "math"

// CalculateOffset returns (page-1)*size; page 1 has offset 0. ok is false when
// the offset does not fit in an int, which means the page lies past any data.
func CalculateOffset(page, size int) (offset int, ok bool) {
	if page < 1 || size < 1 {
		return 0, false
	}
	if page-1 > math.MaxInt/size {
		return 0, false
	}
	return (page - 1) * size, true
}
