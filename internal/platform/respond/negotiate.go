package respond

import (
	"net/http"
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Malformed or
// out-of-range q values fall back to 1.0; a bare type becomes type/*.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		mr := mediaRange{q: 1.0}
		if typ, sub, ok := strings.Cut(mt, "/"); ok {
			mr.typ, mr.subtype = strings.TrimSpace(typ), strings.TrimSpace(sub)
		} else {
			mr.typ, mr.subtype = mt, "*"
		}
		for _, p := range params[1:] {
			k, v, ok := strings.Cut(p, "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || q < 0 || q > 1 {
				q = 1.0
			}
			mr.q = q
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how closely r names format ("json" or "cbor"); -1 means
// the range does not match the format at all.
func (r mediaRange) specificity(format string) int {
	switch {
	case r.typ == "*" && r.subtype == "*":
		return 0
	case r.typ != "application":
		return -1
	case r.subtype == "*":
		return 1
	case r.subtype == "*+"+format:
		return 2
	case r.subtype == format:
		return 3
	case r.subtype == "problem+"+format:
		return 4
	default:
		return -1
	}
}

// preference returns the q value and specificity of the most specific range
// matching format.
func preference(ranges []mediaRange, format string) (q float64, rank int) {
	rank = -1
	for _, r := range ranges {
		if s := r.specificity(format); s > rank {
			rank, q = s, r.q
		}
	}
	return q, rank
}

// selectFormat reports whether the problem body should be CBOR. JSON wins
// unless the client weights CBOR higher, or equally with a more specific range.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	qCBOR, specCBOR := preference(ranges, "cbor")
	if specCBOR < 0 || qCBOR <= 0 {
		return false
	}
	qJSON, specJSON := preference(ranges, "json")
	if specJSON < 0 {
		return true
	}
	if qCBOR != qJSON {
		return qCBOR > qJSON
	}
	return specCBOR > specJSON
}

// NegotiateAccept rewrites a non-empty Accept header to the single media type
// the service answers with, so huma operations pick the same format as
// problem responses. A range with q=0 never selects CBOR.
func NegotiateAccept() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if accept := r.Header.Get("Accept"); accept != "" {
				if selectFormat(accept) {
					r.Header.Set("Accept", contentTypeCBOR)
				} else {
					r.Header.Set("Accept", contentTypeJSON)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
