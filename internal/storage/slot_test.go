package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func openTestGdataSlot(t *testing.T) *GdataSlot {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	appName := fmt.Sprintf("flappy_test_%d", time.Now().UnixNano())
	slot, err := OpenGdataSlot(appName, "flappyHighScore")
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return slot
}

func TestGdataSlotRoundTrip(t *testing.T) {
	slot := openTestGdataSlot(t)

	if got, err := slot.LoadBest(); err != nil || got != 0 {
		t.Fatalf("empty slot = %d, %v; want 0, nil", got, err)
	}

	if err := slot.SaveBest(15); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := slot.SaveBest(3); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if got, _ := slot.LoadBest(); got != 15 {
		t.Errorf("best = %d, want 15", got)
	}

	if err := slot.ClearBest(); err != nil {
		t.Fatalf("ClearBest() failed: %v", err)
	}
	if got, _ := slot.LoadBest(); got != 0 {
		t.Errorf("after ClearBest: best = %d, want 0", got)
	}
}

func TestGdataSlotCorruptValue(t *testing.T) {
	slot := openTestGdataSlot(t)

	for _, raw := range []string{"abc", "-4", ""} {
		if err := slot.manager.SaveObjectProp(gdataObject, slot.name, []byte(raw)); err != nil {
			t.Fatalf("SaveObjectProp failed: %v", err)
		}
		got, err := slot.LoadBest()
		if err != nil {
			t.Errorf("LoadBest(%q) error: %v", raw, err)
		}
		if got != 0 {
			t.Errorf("LoadBest(%q) = %d, want 0", raw, got)
		}
	}

	if err := slot.manager.SaveObjectProp(gdataObject, slot.name, []byte(" 21\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}
	if got, _ := slot.LoadBest(); got != 21 {
		t.Errorf("LoadBest with whitespace = %d, want 21", got)
	}
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()

	if got, _ := slot.LoadBest(); got != 0 {
		t.Errorf("new slot = %d, want 0", got)
	}
	slot.SaveBest(5)
	slot.SaveBest(2)
	if got, _ := slot.LoadBest(); got != 5 {
		t.Errorf("best = %d, want 5", got)
	}
	slot.ClearBest()
	if got, _ := slot.LoadBest(); got != 0 {
		t.Errorf("after ClearBest = %d, want 0", got)
	}
}

// flakyProps stores properties in memory and fails loads on demand.
type flakyProps struct {
	data    map[string][]byte
	loadErr error
}

func (f *flakyProps) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := f.data[objectKey+"/"+propKey]
	return ok
}

func (f *flakyProps) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[objectKey+"/"+propKey], nil
}

func (f *flakyProps) SaveObjectProp(objectKey, propKey string, data []byte) error {
	f.data[objectKey+"/"+propKey] = data
	return nil
}

func TestGdataSlotSaveBestKeepsValueOnReadError(t *testing.T) {
	props := &flakyProps{data: map[string][]byte{gdataObject + "/flappyHighScore": []byte("50")}}
	slot := &GdataSlot{manager: props, name: "flappyHighScore"}

	props.loadErr = errors.New("read failed")
	if err := slot.SaveBest(10); !errors.Is(err, props.loadErr) {
		t.Fatalf("SaveBest() = %v, want the read error", err)
	}

	props.loadErr = nil
	if got, _ := slot.LoadBest(); got != 50 {
		t.Errorf("best = %d after failed save, want 50", got)
	}

	if err := slot.SaveBest(60); err != nil {
		t.Fatalf("SaveBest() = %v", err)
	}
	if got, _ := slot.LoadBest(); got != 60 {
		t.Errorf("best = %d, want 60", got)
	}
}
