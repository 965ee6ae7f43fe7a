package catalog

// Built-in catalog and tier names.
const (
	LegacyName = "legacy"
	TieredName = "tiered"

	TierLegacy = "1MP"
	Tier1K     = "1K"
	Tier2K     = "2K"
	Tier4K     = "4K"
)

// legacyBuckets is the single-tier ~1MP table of the first product
// generation.
var legacyBuckets = []Bucket{
	{512, 2048}, {576, 1792}, {736, 1408}, {768, 1344}, {800, 1280},
	{832, 1248}, {864, 1184}, {896, 1152}, {928, 1120}, {960, 1088},
	{1024, 1024},
	{1088, 960}, {1120, 928}, {1152, 896}, {1184, 864}, {1248, 832},
	{1280, 800}, {1344, 768}, {1408, 736}, {1472, 704}, {1792, 576}, {2048, 512},
}

// Multi-tier tables of the current generation.
var (
	buckets1K = []Bucket{
		{768, 1344}, {832, 1248}, {896, 1152}, {960, 1088}, {1024, 1024},
		{1088, 960}, {1152, 896}, {1248, 832}, {1344, 768},
	}

	// ~4MP, the 1MP shapes scaled x2.
	buckets2K = []Bucket{
		{1024, 4096}, {1152, 3584}, {1472, 2816}, {1536, 2688}, {1600, 2560},
		{1664, 2496}, {1728, 2368}, {1792, 2304}, {1856, 2240}, {1920, 2176},
		{2048, 2048},
		{2176, 1920}, {2240, 1856}, {2304, 1792}, {2368, 1728}, {2496, 1664},
		{2560, 1600}, {2688, 1536}, {2816, 1472}, {3584, 1152}, {4096, 1024},
	}

	// ~16MP, scaled x4.
	buckets4K = []Bucket{
		{2048, 8192}, {2304, 7168}, {2944, 5632}, {3072, 5376}, {3200, 5120},
		{3328, 4992}, {3456, 4736}, {3584, 4608}, {3712, 4480}, {3840, 4352},
		{4096, 4096},
		{4352, 3840}, {4480, 3712}, {4608, 3584}, {4736, 3456}, {4992, 3328},
		{5120, 3200}, {5376, 3072}, {5632, 2944}, {7168, 2304}, {8192, 2048},
	}
)

var (
	legacyCatalog = MustNew(LegacyName, []Tier{
		{Name: TierLegacy, Buckets: legacyBuckets},
	})

	tieredCatalog = MustNew(TieredName, []Tier{
		{Name: Tier1K, Buckets: buckets1K},
		{Name: Tier2K, Buckets: buckets2K},
		{Name: Tier4K, Buckets: buckets4K},
	}, WithDynamicSizing())
)

// Legacy returns the built-in single-tier ~1MP catalog. Dynamic sizing is
// disabled: the legacy generation always answers with a fixed bucket.
func Legacy() *Catalog {
	return legacyCatalog
}

// Tiered returns the built-in 1K/2K/4K catalog with dynamic sizing enabled.
func Tiered() *Catalog {
	return tieredCatalog
}

func init() {
	register(legacyCatalog)
	register(tieredCatalog)
}
