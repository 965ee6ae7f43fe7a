package json

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Level string `json:"level" default:"info"`
	Size  int    `json:"size" default:"42"`
}

func TestUnmarshalAppliesDefaults(t *testing.T) {
	var s sample
	if err := Unmarshal([]byte(`{"name":"a"}`), &s); err != nil {
		t.Fatal(err)
	}

	if s.Name != "a" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Level != "info" {
		t.Errorf("Level = %q, want default 'info'", s.Level)
	}
	if s.Size != 42 {
		t.Errorf("Size = %d, want default 42", s.Size)
	}
}

func TestUnmarshalKeepsExplicitValues(t *testing.T) {
	var s sample
	if err := Unmarshal([]byte(`{"level":"debug","size":7}`), &s); err != nil {
		t.Fatal(err)
	}

	if s.Level != "debug" || s.Size != 7 {
		t.Errorf("explicit values overridden: %+v", s)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sample{Name: "a", Level: "warn", Size: 1})
	if err != nil {
		t.Fatal(err)
	}

	var s sample
	if err := Unmarshal(data, &s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "a" || s.Level != "warn" || s.Size != 1 {
		t.Errorf("round trip mismatch: %+v", s)
	}
}

func TestEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(sample{Name: "b"}); err != nil {
		t.Fatal(err)
	}

	var s sample
	if err := NewDecoder(strings.NewReader(buf.String())).Decode(&s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "b" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Level != "info" {
		t.Errorf("Level = %q, want default applied on decode", s.Level)
	}
}

func TestUnmarshalError(t *testing.T) {
	var s sample
	if err := Unmarshal([]byte(`{bad`), &s); err == nil {
		t.Error("expected decode error")
	}
}
