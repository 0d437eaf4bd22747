package logging

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

const (
	invalidTraceID = "00000000000000000000000000000000"
	invalidSpanID  = "0000000000000000"
)

// traceContext is the subset of a traceparent header the logger records.
type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceparent returns the trace context carried by header. All-zero IDs
// and version ff are invalid per the W3C spec.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(header)))
	if len(m) != 5 {
		return traceContext{}, false
	}
	if m[1] == "ff" || m[2] == invalidTraceID || m[3] == invalidSpanID {
		return traceContext{}, false
	}
	flags, err := strconv.ParseUint(m[4], 16, 8)
	if err != nil {
		return traceContext{}, false
	}
	return traceContext{
		TraceID: m[2],
		SpanID:  m[3],
		Sampled: flags&0x01 == 0x01,
	}, true
}

func (tc traceContext) fields() []zap.Field {
	return []zap.Field{
		zap.String("traceId", tc.TraceID),
		zap.String("spanId", tc.SpanID),
		zap.Bool("traceSampled", tc.Sampled),
	}
}

func loggerWithTrace(base *zap.Logger, header, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	var fields []zap.Field
	if tc, ok := parseTraceparent(header); ok {
		fields = tc.fields()
	}
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
