// Package catalog holds the fixed tables of supported output resolutions
// ("buckets"), grouped into named tiers. Catalogs are immutable after
// construction and safe for concurrent use.
package catalog

import "fmt"

const (
	// Grid is the alignment every bucket dimension must satisfy.
	Grid = 32

	// DenseSize is the bucket count above which a tier is considered dense.
	// Only dense tiers of a dynamic-sizing catalog are eligible for the
	// resolver's dynamic fallback.
	DenseSize = 20
)

// Bucket is one valid output resolution. Both dimensions are positive
// multiples of Grid.
type Bucket struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Pixels returns the bucket's pixel count.
func (b Bucket) Pixels() int64 {
	return int64(b.Width) * int64(b.Height)
}

// Aspect returns width divided by height.
func (b Bucket) Aspect() float64 {
	return float64(b.Width) / float64(b.Height)
}

// Validate checks the bucket invariants: positive dimensions, Grid-aligned.
func (b Bucket) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("bucket %dx%d: dimensions must be positive", b.Width, b.Height)
	}
	if b.Width%Grid != 0 || b.Height%Grid != 0 {
		return fmt.Errorf("bucket %dx%d: dimensions must be multiples of %d", b.Width, b.Height, Grid)
	}
	return nil
}

func (b Bucket) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Tier is a named, ordered set of buckets representing one resolution class.
// Bucket order is significant: distance ties resolve to the first bucket.
type Tier struct {
	Name    string   `json:"name"`
	Buckets []Bucket `json:"buckets"`
}

// Dense reports whether the tier has more than DenseSize buckets.
func (t Tier) Dense() bool {
	return len(t.Buckets) > DenseSize
}

// Catalog is an immutable collection of named tiers with deterministic order.
type Catalog struct {
	name    string
	order   []string
	tiers   map[string]Tier
	dynamic bool
}

// Option configures a catalog at construction time.
type Option func(*Catalog)

// WithDynamicSizing marks the catalog as eligible for the resolver's
// dynamic fallback on dense tiers.
func WithDynamicSizing() Option {
	return func(c *Catalog) { c.dynamic = true }
}

// New builds a catalog from the given tiers, preserving their order.
// Every bucket is validated; the first violation aborts construction.
func New(name string, tiers []Tier, opts ...Option) (*Catalog, error) {
	if name == "" {
		return nil, fmt.Errorf("catalog name cannot be empty")
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("catalog %s: at least one tier is required", name)
	}

	c := &Catalog{
		name:  name,
		order: make([]string, 0, len(tiers)),
		tiers: make(map[string]Tier, len(tiers)),
	}

	for _, tier := range tiers {
		if tier.Name == "" {
			return nil, fmt.Errorf("catalog %s: tier name cannot be empty", name)
		}
		if _, exists := c.tiers[tier.Name]; exists {
			return nil, fmt.Errorf("catalog %s: duplicate tier %s", name, tier.Name)
		}
		if len(tier.Buckets) == 0 {
			return nil, &InvalidBucketError{Catalog: name, Tier: tier.Name, Reason: "tier has no buckets"}
		}
		for _, b := range tier.Buckets {
			if err := b.Validate(); err != nil {
				return nil, &InvalidBucketError{Catalog: name, Tier: tier.Name, Bucket: b, Reason: err.Error()}
			}
		}
		// Copy so later mutation of the caller's slice cannot leak in.
		buckets := make([]Bucket, len(tier.Buckets))
		copy(buckets, tier.Buckets)

		c.order = append(c.order, tier.Name)
		c.tiers[tier.Name] = Tier{Name: tier.Name, Buckets: buckets}
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New, panicking on error. Intended for built-in tables.
func MustNew(name string, tiers []Tier, opts ...Option) *Catalog {
	c, err := New(name, tiers, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog's name.
func (c *Catalog) Name() string {
	return c.name
}

// DynamicSizing reports whether the catalog permits the dynamic fallback.
func (c *Catalog) DynamicSizing() bool {
	return c.dynamic
}

// TierNames returns the tier names in catalog order.
func (c *Catalog) TierNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Tier returns the named tier, or an UnknownTierError when the name is not
// part of this catalog.
func (c *Catalog) Tier(name string) (Tier, error) {
	tier, ok := c.tiers[name]
	if !ok {
		return Tier{}, &UnknownTierError{Catalog: c.name, Tier: name, Known: c.TierNames()}
	}
	// Hand out a copy; catalogs never mutate.
	buckets := make([]Bucket, len(tier.Buckets))
	copy(buckets, tier.Buckets)
	return Tier{Name: tier.Name, Buckets: buckets}, nil
}
