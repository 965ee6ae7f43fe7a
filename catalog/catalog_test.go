package catalog

import (
	"errors"
	"testing"
)

func TestBuiltinBucketInvariants(t *testing.T) {
	for _, cat := range []*Catalog{Legacy(), Tiered()} {
		for _, name := range cat.TierNames() {
			tier, err := cat.Tier(name)
			if err != nil {
				t.Fatalf("Tier(%q) returned error: %v", name, err)
			}
			for _, b := range tier.Buckets {
				if b.Width <= 0 || b.Height <= 0 {
					t.Errorf("%s/%s bucket %v: non-positive dimension", cat.Name(), name, b)
				}
				if b.Width%Grid != 0 || b.Height%Grid != 0 {
					t.Errorf("%s/%s bucket %v: not %d-aligned", cat.Name(), name, b, Grid)
				}
			}
		}
	}
}

func TestBuiltinShape(t *testing.T) {
	tests := []struct {
		catalog *Catalog
		tier    string
		count   int
		dense   bool
	}{
		{Legacy(), TierLegacy, 22, true},
		{Tiered(), Tier1K, 9, false},
		{Tiered(), Tier2K, 21, true},
		{Tiered(), Tier4K, 21, true},
	}

	for _, tt := range tests {
		tier, err := tt.catalog.Tier(tt.tier)
		if err != nil {
			t.Fatalf("Tier(%q): %v", tt.tier, err)
		}
		if len(tier.Buckets) != tt.count {
			t.Errorf("%s/%s: got %d buckets, want %d", tt.catalog.Name(), tt.tier, len(tier.Buckets), tt.count)
		}
		if tier.Dense() != tt.dense {
			t.Errorf("%s/%s: Dense() = %v, want %v", tt.catalog.Name(), tt.tier, tier.Dense(), tt.dense)
		}
	}

	if Legacy().DynamicSizing() {
		t.Error("legacy catalog must not allow dynamic sizing")
	}
	if !Tiered().DynamicSizing() {
		t.Error("tiered catalog must allow dynamic sizing")
	}
}

func TestTierUnknown(t *testing.T) {
	_, err := Tiered().Tier("8K")
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}

	var unknownErr *UnknownTierError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTierError, got %T", err)
	}
	if unknownErr.Tier != "8K" {
		t.Errorf("Tier = %q, want %q", unknownErr.Tier, "8K")
	}
	if len(unknownErr.Known) != 3 {
		t.Errorf("Known = %v, want the three tiered names", unknownErr.Known)
	}
}

func TestTierNamesOrder(t *testing.T) {
	got := Tiered().TierNames()
	want := []string{Tier1K, Tier2K, Tier4K}
	if len(got) != len(want) {
		t.Fatalf("TierNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TierNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
	}{
		{"misaligned bucket", []Tier{{Name: "a", Buckets: []Bucket{{100, 128}}}}},
		{"zero dimension", []Tier{{Name: "a", Buckets: []Bucket{{0, 128}}}}},
		{"negative dimension", []Tier{{Name: "a", Buckets: []Bucket{{-32, 128}}}}},
		{"empty tier", []Tier{{Name: "a"}}},
		{"duplicate tier", []Tier{
			{Name: "a", Buckets: []Bucket{{128, 128}}},
			{Name: "a", Buckets: []Bucket{{256, 256}}},
		}},
		{"unnamed tier", []Tier{{Name: "", Buckets: []Bucket{{128, 128}}}}},
		{"no tiers", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("bad", tt.tiers); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestCatalogImmutability(t *testing.T) {
	source := []Tier{{Name: "a", Buckets: []Bucket{{128, 128}, {256, 256}}}}
	cat, err := New("immutable", source)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the construction input must not leak in.
	source[0].Buckets[0] = Bucket{9999, 9999}

	tier, err := cat.Tier("a")
	if err != nil {
		t.Fatal(err)
	}
	if tier.Buckets[0] != (Bucket{128, 128}) {
		t.Errorf("construction input mutation leaked into catalog: %v", tier.Buckets[0])
	}

	// Mutating a lookup result must not change the catalog either.
	tier.Buckets[1] = Bucket{9999, 9999}
	again, _ := cat.Tier("a")
	if again.Buckets[1] != (Bucket{256, 256}) {
		t.Errorf("lookup result mutation leaked into catalog: %v", again.Buckets[1])
	}
}

func TestBucketHelpers(t *testing.T) {
	b := Bucket{1728, 2368}
	if b.Pixels() != 4091904 {
		t.Errorf("Pixels() = %d, want 4091904", b.Pixels())
	}
	if b.String() != "1728x2368" {
		t.Errorf("String() = %q", b.String())
	}
}
