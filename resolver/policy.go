package resolver

import (
	"fmt"

	"github.com/leeforge/resolution/catalog"
)

// Policy carries every tunable of the matching algorithm. The shipped
// defaults are the empirically chosen production values; hosts may override
// them through the config package.
type Policy struct {
	// Tier auto-selection bands, in pixels. Lower bounds are inclusive.
	TierPixels4K int64 `mapstructure:"tier-pixels-4k" json:"tierPixels4K" yaml:"tier-pixels-4k" default:"8000000"`
	TierPixels2K int64 `mapstructure:"tier-pixels-2k" json:"tierPixels2K" yaml:"tier-pixels-2k" default:"2000000"`
	TierPixels1K int64 `mapstructure:"tier-pixels-1k" json:"tierPixels1K" yaml:"tier-pixels-1k" default:"1000000"`

	// Aspect-ratio escapes: inputs this wide or this tall are bumped one
	// tier up to preserve detail along the long edge.
	WideAspect4K float64 `mapstructure:"wide-aspect-4k" json:"wideAspect4K" yaml:"wide-aspect-4k" default:"2.5"`
	TallAspect4K float64 `mapstructure:"tall-aspect-4k" json:"tallAspect4K" yaml:"tall-aspect-4k" default:"0.4"`
	WideAspect2K float64 `mapstructure:"wide-aspect-2k" json:"wideAspect2K" yaml:"wide-aspect-2k" default:"2.0"`
	TallAspect2K float64 `mapstructure:"tall-aspect-2k" json:"tallAspect2K" yaml:"tall-aspect-2k" default:"0.5"`

	// FallbackDistance is the squared-pixel distance above which a dense
	// tier of a dynamic-sizing catalog stops answering with a fixed bucket
	// and synthesizes a grid-aligned size instead.
	FallbackDistance int64 `mapstructure:"fallback-distance" json:"fallbackDistance" yaml:"fallback-distance" default:"2000"`

	// Pin is the manual override band: inputs inside the band that sit
	// within PinDistance of the pin bucket resolve to it directly. It
	// corrects a known-bad automatic match in that region.
	PinMinWidth  int   `mapstructure:"pin-min-width" json:"pinMinWidth" yaml:"pin-min-width" default:"1650"`
	PinMaxWidth  int   `mapstructure:"pin-max-width" json:"pinMaxWidth" yaml:"pin-max-width" default:"1750"`
	PinMinHeight int   `mapstructure:"pin-min-height" json:"pinMinHeight" yaml:"pin-min-height" default:"2350"`
	PinMaxHeight int   `mapstructure:"pin-max-height" json:"pinMaxHeight" yaml:"pin-max-height" default:"2550"`
	PinWidth     int   `mapstructure:"pin-width" json:"pinWidth" yaml:"pin-width" default:"1696"`
	PinHeight    int   `mapstructure:"pin-height" json:"pinHeight" yaml:"pin-height" default:"2528"`
	PinDistance  int64 `mapstructure:"pin-distance" json:"pinDistance" yaml:"pin-distance" default:"8000"`
}

// DefaultPolicy returns the production defaults.
func DefaultPolicy() Policy {
	return Policy{
		TierPixels4K:     8_000_000,
		TierPixels2K:     2_000_000,
		TierPixels1K:     1_000_000,
		WideAspect4K:     2.5,
		TallAspect4K:     0.4,
		WideAspect2K:     2.0,
		TallAspect2K:     0.5,
		FallbackDistance: 2000,
		PinMinWidth:      1650,
		PinMaxWidth:      1750,
		PinMinHeight:     2350,
		PinMaxHeight:     2550,
		PinWidth:         1696,
		PinHeight:        2528,
		PinDistance:      8000,
	}
}

// Validate implements the config Validator interface.
func (p Policy) Validate() error {
	if p.TierPixels1K <= 0 || p.TierPixels2K <= 0 || p.TierPixels4K <= 0 {
		return fmt.Errorf("policy: tier pixel thresholds must be positive")
	}
	if !(p.TierPixels1K < p.TierPixels2K && p.TierPixels2K < p.TierPixels4K) {
		return fmt.Errorf("policy: tier pixel thresholds must be strictly increasing")
	}
	if p.TallAspect4K <= 0 || p.TallAspect2K <= 0 {
		return fmt.Errorf("policy: tall aspect cutoffs must be positive")
	}
	if p.WideAspect4K <= p.TallAspect4K || p.WideAspect2K <= p.TallAspect2K {
		return fmt.Errorf("policy: wide aspect cutoffs must exceed tall aspect cutoffs")
	}
	if p.FallbackDistance <= 0 || p.PinDistance <= 0 {
		return fmt.Errorf("policy: distance thresholds must be positive")
	}
	if p.PinMinWidth >= p.PinMaxWidth || p.PinMinHeight >= p.PinMaxHeight {
		return fmt.Errorf("policy: pin band bounds must be ordered")
	}
	if err := (catalog.Bucket{Width: p.PinWidth, Height: p.PinHeight}).Validate(); err != nil {
		return fmt.Errorf("policy: pin bucket: %w", err)
	}
	return nil
}

// SelectTier picks a tier name for the given pixel count and aspect ratio.
// A monotone step function: for a fixed aspect ratio, more pixels never
// select a smaller tier.
func (p Policy) SelectTier(pixels int64, aspect float64) string {
	switch {
	case pixels >= p.TierPixels4K:
		return catalog.Tier4K
	case pixels >= p.TierPixels2K:
		if aspect > p.WideAspect4K || aspect < p.TallAspect4K {
			return catalog.Tier4K
		}
		return catalog.Tier2K
	case pixels >= p.TierPixels1K:
		if aspect > p.WideAspect2K || aspect < p.TallAspect2K {
			return catalog.Tier2K
		}
		return catalog.Tier1K
	default:
		return catalog.Tier1K
	}
}

// pinned reports whether the input falls inside the manual override band,
// close enough to the pin bucket. Band bounds are exclusive.
func (p Policy) pinned(width, height int) (catalog.Bucket, bool) {
	if width <= p.PinMinWidth || width >= p.PinMaxWidth {
		return catalog.Bucket{}, false
	}
	if height <= p.PinMinHeight || height >= p.PinMaxHeight {
		return catalog.Bucket{}, false
	}
	pin := catalog.Bucket{Width: p.PinWidth, Height: p.PinHeight}
	if distance(width, height, pin) >= p.PinDistance {
		return catalog.Bucket{}, false
	}
	return pin, true
}
