package otel

import (
	"context"
	"errors"
	"testing"

	"reservo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	o := New(&config.Config{})

	ctx, scope := o.NewScope(context.Background(), "service", "service.CheckConflicts")
	defer scope.End()

	assert.NotNil(t, ctx)
	scope.TraceIfError(nil)
}

func TestScopeRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	o := &otelImpl{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}

	_, scope := o.NewScope(context.Background(), "engine", "engine.Suggest")
	scope.SetAttributes(map[string]any{
		"party_size": 4,
		"score":      2.5,
		"preferred":  true,
		"sectors":    []string{"terrace"},
		"table_id":   "T1",
	})
	scope.AddEvent("ranked")
	scope.TraceIfError(errors.New("no table"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "engine.Suggest", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "no table", span.Status().Description)
	assert.Len(t, span.Events(), 2)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(4), attrs["party_size"].AsInt64())
	assert.InDelta(t, 2.5, attrs["score"].AsFloat64(), 1e-9)
	assert.True(t, attrs["preferred"].AsBool())
	assert.Equal(t, []string{"terrace"}, attrs["sectors"].AsStringSlice())
	assert.Equal(t, "T1", attrs["table_id"].AsString())
}
