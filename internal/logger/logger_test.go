package logger

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		t.Fatal("Expected request ID in context")
	}
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	// Test with logger
	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}
}

func TestRequestIDMissing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	if ok {
		t.Error("Expected no request ID in empty context")
	}

	if log := FromContext(context.Background()); log == nil {
		t.Error("Expected non-nil fallback logger")
	}
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == "" || b == "" {
		t.Error("Expected non-empty request IDs")
	}
	if a == b {
		t.Error("Expected unique request IDs")
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}

	if config.Level != "info" {
		t.Errorf("Expected info level in prod, got %s", config.Level)
	}

	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}

	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Format != "text" {
		t.Errorf("Expected text format in dev, got %s", config.Format)
	}

	if config.Level != "debug" {
		t.Errorf("Expected debug level in dev, got %s", config.Level)
	}

	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}
