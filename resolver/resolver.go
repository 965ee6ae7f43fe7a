// Package resolver picks an output resolution for an input image from a
// bucket catalog. It is pure computation: three ordered policy stages
// (manual pin, nearest bucket by squared pixel distance, dynamic grid-aligned
// fallback) over immutable catalog data.
package resolver

import (
	"fmt"
	"strings"

	validatorV10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/leeforge/resolution/catalog"
	"github.com/leeforge/resolution/logging"
)

// TierAuto requests automatic tier selection based on input size.
const TierAuto = "auto"

// Rule names the policy stage that produced a result.
type Rule string

const (
	// RuleNearest is the general nearest-bucket match.
	RuleNearest Rule = "nearest"
	// RuleDynamic is the grid-aligned fallback for poorly covered inputs.
	RuleDynamic Rule = "dynamic"
	// RulePinned is the manual override band.
	RulePinned Rule = "pinned"
)

// Request carries the input dimensions and the desired tier. An empty Tier
// (or TierAuto, case-insensitive) selects the tier automatically.
type Request struct {
	Width  int    `json:"width" validate:"required,gt=0"`
	Height int    `json:"height" validate:"required,gt=0"`
	Tier   string `json:"tier,omitempty"`
}

// Result is the selected output resolution plus descriptive labels.
type Result struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tier   string `json:"tier"`
	Rule   Rule   `json:"rule"`
	Aspect string `json:"aspect"`
	Info   string `json:"info"`
}

var validate = validatorV10.New()

// Resolver maps input dimensions onto a catalog. Stateless per call and safe
// for concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
	policy  Policy
	logger  logging.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPolicy overrides the default policy.
func WithPolicy(p Policy) Option {
	return func(r *Resolver) { r.policy = p }
}

// WithLogger sets the decision logger. Resolvers are silent by default.
func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// New creates a Resolver over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog: cat,
		policy:  DefaultPolicy(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve selects the output resolution for the request. It always returns
// a positive, grid-aligned pair or an error; there is no partial result.
func (r *Resolver) Resolve(req Request) (Result, error) {
	if err := validate.Struct(req); err != nil {
		return Result{}, &DegenerateInputError{Width: req.Width, Height: req.Height, Err: err}
	}

	pixels := int64(req.Width) * int64(req.Height)
	aspect := float64(req.Width) / float64(req.Height)

	tierName := req.Tier
	if tierName == "" || strings.EqualFold(tierName, TierAuto) {
		tierName = r.autoTier(pixels, aspect)
	}

	tier, err := r.catalog.Tier(tierName)
	if err != nil {
		return Result{}, err
	}

	bucket, rule, dist := r.apply(req.Width, req.Height, tier)

	res := Result{
		Width:  bucket.Width,
		Height: bucket.Height,
		Tier:   tier.Name,
		Rule:   rule,
		Aspect: DetectAspect(bucket.Width, bucket.Height),
	}
	res.Info = r.describe(res, req)

	r.logger.Debug("resolved bucket",
		zap.Int("input_width", req.Width),
		zap.Int("input_height", req.Height),
		zap.String("tier", tier.Name),
		zap.String("rule", string(rule)),
		zap.Int64("distance", dist),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
	)

	return res, nil
}

// autoTier picks a tier when the caller did not pin one. Single-tier
// catalogs have nothing to choose from.
func (r *Resolver) autoTier(pixels int64, aspect float64) string {
	names := r.catalog.TierNames()
	if len(names) == 1 {
		return names[0]
	}
	return r.policy.SelectTier(pixels, aspect)
}

// apply runs the three policy stages in order: pin, nearest match, fallback.
func (r *Resolver) apply(width, height int, tier catalog.Tier) (catalog.Bucket, Rule, int64) {
	if r.catalog.DynamicSizing() {
		if pin, ok := r.policy.pinned(width, height); ok {
			return pin, RulePinned, distance(width, height, pin)
		}
	}

	bucket, dist := nearest(width, height, tier.Buckets)

	if r.catalog.DynamicSizing() && tier.Dense() && dist > r.policy.FallbackDistance {
		dyn := catalog.Bucket{Width: alignUp(width), Height: alignUp(height)}
		return dyn, RuleDynamic, dist
	}
	return bucket, RuleNearest, dist
}

// nearest returns the bucket minimizing squared Euclidean pixel distance and
// that distance. Ties keep the earlier bucket, so catalog order decides.
func nearest(width, height int, buckets []catalog.Bucket) (catalog.Bucket, int64) {
	best := buckets[0]
	bestDist := distance(width, height, best)
	for _, b := range buckets[1:] {
		if d := distance(width, height, b); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, bestDist
}

// distance is the squared Euclidean distance in pixel space. Preferred over
// aspect-ratio difference: it accounts for absolute scale, not only shape.
func distance(width, height int, b catalog.Bucket) int64 {
	dw := int64(width - b.Width)
	dh := int64(height - b.Height)
	return dw*dw + dh*dh
}

// alignUp rounds v up to the next multiple of the catalog grid, so the
// dynamic fallback never shrinks below the input.
func alignUp(v int) int {
	return (v + catalog.Grid - 1) / catalog.Grid * catalog.Grid
}

// describe renders the human-readable summary returned to the host.
func (r *Resolver) describe(res Result, req Request) string {
	megapixels := float64(res.Width) * float64(res.Height) / 1_000_000
	return fmt.Sprintf("%s %s • %d×%d • %.1fMP • input %d×%d (%s)",
		r.catalog.Name(), res.Tier, res.Width, res.Height, megapixels,
		req.Width, req.Height, res.Rule)
}
