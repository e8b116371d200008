//go:build otel

// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tracing

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// defaultOTLPEndpoint matches a local collector or Jaeger all-in-one.
const defaultOTLPEndpoint = "http://localhost:4318"

const instrumentationName = "github.com/sigstore/md5-digest"

var otelTracerProvider *sdktrace.TracerProvider

// InitFromEnv configures an OTLP/HTTP exporter unless OTEL_TRACES_EXPORTER is
// "none". The endpoint comes from the standard OTEL_EXPORTER_OTLP_* variables
// and falls back to defaultOTLPEndpoint without TLS.
func InitFromEnv() error {
	if os.Getenv("OTEL_TRACES_EXPORTER") == "none" {
		return nil
	}

	var opts []otlptracehttp.Option
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" && os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(defaultOTLPEndpoint), otlptracehttp.WithInsecure())
	}

	exp, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("create OTLP exporter: %w", err)
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "md5sum"
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otelTracerProvider = tp
	otel.SetTracerProvider(tp)

	SetTracer(&otelTracer{tracer: tp.Tracer(instrumentationName)})
	return nil
}

// Shutdown flushes batched spans. Pass a context with a deadline.
func Shutdown(ctx context.Context) error {
	if otelTracerProvider == nil {
		return nil
	}
	tp := otelTracerProvider
	otelTracerProvider = nil
	return tp.Shutdown(ctx)
}

type otelTracer struct {
	tracer trace.Tracer
}

func (t *otelTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) SetAttribute(key string, value interface{}) {
	s.span.SetAttributes(toKeyValue(key, value))
}

func (s *otelSpan) End() {
	s.span.End()
}

func toKeyValue(key string, value interface{}) attribute.KeyValue {
	k := attribute.Key(key)
	switch v := value.(type) {
	case string:
		return k.String(v)
	case bool:
		return k.Bool(v)
	case int:
		return k.Int(v)
	case int64:
		return k.Int64(v)
	case nil:
		return k.String("")
	default:
		return k.String(fmt.Sprintf("%v", v))
	}
}
