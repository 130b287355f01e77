package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestDeviceIDCtxKey(t *testing.T) {
	if DeviceIDCtxKey.String() != "deviceID" {
		t.Errorf("expected 'deviceID', got '%s'", DeviceIDCtxKey.String())
	}
}

func TestGetDeviceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, "laptop-1")

	deviceID, ok := GetDeviceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if deviceID != "laptop-1" {
		t.Errorf("expected deviceID='laptop-1', got %q", deviceID)
	}
}

func TestGetDeviceIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	deviceID, ok := GetDeviceIDFromContext(ctx)

	if ok {
		t.Error("expected ok=false for missing value")
	}
	if deviceID != "" {
		t.Errorf("expected empty deviceID, got %q", deviceID)
	}
}

func TestGetDeviceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, 42)

	_, ok := GetDeviceIDFromContext(ctx)

	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}
