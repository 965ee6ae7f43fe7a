package catalog

import (
	"fmt"
	"strings"
)

// UnknownTierError reports a tier lookup against a name the catalog does not
// define.
type UnknownTierError struct {
	Catalog string
	Tier    string
	Known   []string
}

func (e *UnknownTierError) Error() string {
	return fmt.Sprintf("catalog %s has no tier %q (known: %s)",
		e.Catalog, e.Tier, strings.Join(e.Known, ", "))
}

// InvalidBucketError reports a bucket table that violates the catalog
// invariants at construction time.
type InvalidBucketError struct {
	Catalog string
	Tier    string
	Bucket  Bucket
	Reason  string
}

func (e *InvalidBucketError) Error() string {
	return fmt.Sprintf("catalog %s tier %s: %s", e.Catalog, e.Tier, e.Reason)
}
