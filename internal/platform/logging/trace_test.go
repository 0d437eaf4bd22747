package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		traceID string
		spanID  string
		sampled bool
	}{
		{
			name:    "sampled",
			header:  "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01",
			ok:      true,
			traceID: "3d23d071b5bfd6579171efce907685cb",
			spanID:  "08f067aa0ba902b7",
			sampled: true,
		},
		{
			name:    "not sampled",
			header:  "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00",
			ok:      true,
			traceID: "3d23d071b5bfd6579171efce907685cb",
			spanID:  "08f067aa0ba902b7",
		},
		{
			name:    "upper case and other flag bits",
			header:  "00-3D23D071B5BFD6579171EFCE907685CB-08F067AA0BA902B7-0B",
			ok:      true,
			traceID: "3d23d071b5bfd6579171efce907685cb",
			spanID:  "08f067aa0ba902b7",
			sampled: true,
		},
		{name: "empty", header: ""},
		{name: "garbage", header: "invalid"},
		{name: "short trace id", header: "00-3d23d071-08f067aa0ba902b7-01"},
		{name: "zero trace id", header: "00-00000000000000000000000000000000-08f067aa0ba902b7-01"},
		{name: "zero span id", header: "00-3d23d071b5bfd6579171efce907685cb-0000000000000000-01"},
		{name: "forbidden version", header: "ff-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("parseTraceparent(%q) ok = %v, want %v", tt.header, ok, tt.ok)
			}
			if !ok {
				return
			}
			if tc.TraceID != tt.traceID || tc.SpanID != tt.spanID || tc.Sampled != tt.sampled {
				t.Fatalf("unexpected trace context: %+v", tc)
			}
		})
	}
}

func TestLoggerWithTraceAddsFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	logger := loggerWithTrace(zap.New(core), "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01", "req-123")
	logger.Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := fieldMap(entries[0].Context)
	if f, ok := fields["traceId"]; !ok || f.String != "3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("traceId mismatch: %+v", fields)
	}
	if f, ok := fields["spanId"]; !ok || f.String != "08f067aa0ba902b7" {
		t.Fatalf("spanId mismatch: %+v", fields)
	}
	if f, ok := fields["traceSampled"]; !ok || f.Type != zapcore.BoolType || f.Integer != 1 {
		t.Fatalf("traceSampled mismatch: %+v", fields)
	}
	if f, ok := fields["requestId"]; !ok || f.String != "req-123" {
		t.Fatalf("requestId mismatch: %+v", fields)
	}
}

func TestLoggerWithTraceNoFieldsReturnsBase(t *testing.T) {
	base := zap.NewNop()
	if got := loggerWithTrace(base, "", ""); got != base {
		t.Fatal("expected base logger when there is nothing to add")
	}
}

func TestLoggerWithTraceNilBase(t *testing.T) {
	if got := loggerWithTrace(nil, "", "req-1"); got == nil {
		t.Fatal("expected non-nil logger for nil base")
	}
}
