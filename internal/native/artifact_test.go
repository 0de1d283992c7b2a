package native

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func fakePayload(data []byte) func() []byte {
	return func() []byte { return data }
}

func TestLocatorExtracts(t *testing.T) {
	data := []byte("fake shared object bytes")
	loc := NewLocator("imgal", "", fakePayload(data))
	defer loc.Cleanup()

	path, err := loc.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if !strings.HasSuffix(path, loc.libFileName()) {
		t.Errorf("path %q does not end in %q", path, loc.libFileName())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read extracted artifact: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("extracted bytes differ from payload")
	}
}

func TestLocatorExtractsOnce(t *testing.T) {
	loc := NewLocator("imgal", "", fakePayload([]byte("x")))
	defer loc.Cleanup()

	p1, err := loc.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	p2, err := loc.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if p1 != p2 {
		t.Errorf("repeated Path returned %q then %q", p1, p2)
	}
}

func TestLocatorUniquePaths(t *testing.T) {
	a := NewLocator("imgal", "", fakePayload([]byte("a")))
	defer a.Cleanup()
	b := NewLocator("imgal", "", fakePayload([]byte("b")))
	defer b.Cleanup()

	pa, err := a.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	pb, err := b.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if pa == pb {
		t.Errorf("two locators materialized the same path %q", pa)
	}
}

func TestLocatorOverride(t *testing.T) {
	loc := NewLocator("imgal", "/opt/imgal/libimgal.so", fakePayload(nil))
	path, err := loc.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if path != "/opt/imgal/libimgal.so" {
		t.Errorf("path = %q, want override", path)
	}
}

func TestLocatorMissingPayload(t *testing.T) {
	loc := NewLocator("imgal", "", fakePayload(nil))
	_, err := loc.Path()
	if !errors.Is(err, ErrResourceMissing) {
		t.Fatalf("err = %v, want ErrResourceMissing", err)
	}
}

func TestLocatorCleanup(t *testing.T) {
	loc := NewLocator("imgal", "", fakePayload([]byte("x")))
	path, err := loc.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}

	loc.Cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("artifact %q still present after Cleanup", path)
	}
}

func TestRegisterPayload(t *testing.T) {
	prev := registeredPayload()
	defer RegisterPayload(prev)

	data := []byte("payload")
	RegisterPayload(data)
	if !bytes.Equal(registeredPayload(), data) {
		t.Fatal("registered payload not visible")
	}
}
