package api

import (
	"errors"
	"regexp"
	"strconv"
)

var rangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ErrBadRangeFormat reports a range string that is not "início-fim".
var ErrBadRangeFormat = errors.New("formato do intervalo deve ser 'início-fim', por exemplo 1-5")

// ErrBadRangeBounds reports a syntactically valid range with bad bounds.
var ErrBadRangeBounds = errors.New("intervalo inválido: início deve ser ≥ 1 e fim ≥ início")

// PageRange is a 1-based inclusive page interval.
type PageRange struct {
	Start int
	End   int
}

// ParsePageRange parses strings like "1-5". Pages are 1-based and the end is
// inclusive, matching what the service expects for /extract.
func ParsePageRange(s string) (PageRange, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return PageRange{}, ErrBadRangeFormat
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return PageRange{}, ErrBadRangeFormat
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return PageRange{}, ErrBadRangeFormat
	}
	if start < 1 || end < start {
		return PageRange{}, ErrBadRangeBounds
	}
	return PageRange{Start: start, End: end}, nil
}
