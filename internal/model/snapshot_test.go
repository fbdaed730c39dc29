package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshot_JSONFieldNames(t *testing.T) {
	s := Snapshot{
		ID:               1718000000000,
		ThumbnailDataURL: "https://picsum.photos/seed/42/800/800",
		Timestamp:        "6/10/2024, 6:13:20 AM",
		Zoom:             2,
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	got := string(data)
	for _, field := range []string{`"id":`, `"thumbnailDataURL":`, `"timestamp":`, `"zoom":`, `"lat":`, `"lng":`} {
		if !strings.Contains(got, field) {
			t.Errorf("marshaled snapshot %s missing %s", got, field)
		}
	}

	if strings.Contains(got, `"note"`) {
		t.Errorf("empty note should be omitted, got %s", got)
	}
}

func TestSnapshot_DecodesBrowserPayload(t *testing.T) {
	payload := `[{"id":1700000000000,"thumbnailDataURL":"https://picsum.photos/seed/7/800/800","timestamp":"11/14/2023, 10:13:20 PM","zoom":2,"lat":0,"lng":0,"note":"first light"}]`

	var list []Snapshot
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if len(list) != 1 {
		t.Fatalf("decoded %d snapshots, want 1", len(list))
	}

	if list[0].ID != 1700000000000 || list[0].Note != "first light" {
		t.Errorf("decoded snapshot = %+v", list[0])
	}
}
