package config

// Feature names for LLM dispatch. Preferences and default chains are keyed
// by these; usage telemetry records them verbatim.
const (
	FeatureGlobalDefault     = "global_default"
	FeatureBriefingNarrative = "briefing_narrative"
	FeatureIntakeExtraction  = "intake_extraction"
)

// Provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ModelRef identifies a dispatchable model.
type ModelRef struct {
	Provider string `yaml:"provider"`
	ModelID  string `yaml:"model_id"`
}

// LLMConfig holds provider credentials, per-feature timeouts, and the
// built-in default fallback chains used when no user preference applies.
type LLMConfig struct {
	// API keys come from the environment (OPENAI_API_KEY / ANTHROPIC_API_KEY),
	// never from YAML.
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`

	// NarrativeTimeoutMs bounds briefing narrative generation.
	NarrativeTimeoutMs int `yaml:"narrative_timeout_ms"`

	// ExtractionTimeoutMs bounds intake extraction.
	ExtractionTimeoutMs int `yaml:"extraction_timeout_ms"`

	// DefaultChains maps feature → ordered candidate models. The first entry
	// is the preferred default; the rest are fallbacks.
	DefaultChains map[string][]ModelRef `yaml:"default_chains"`
}

// DefaultLLMConfig returns the built-in dispatch defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		NarrativeTimeoutMs:  4500,
		ExtractionTimeoutMs: 12000,
		DefaultChains: map[string][]ModelRef{
			FeatureBriefingNarrative: {
				{Provider: ProviderOpenAI, ModelID: "gpt-4o-mini"},
				{Provider: ProviderAnthropic, ModelID: "claude-3-5-haiku-20241022"},
			},
			FeatureIntakeExtraction: {
				{Provider: ProviderOpenAI, ModelID: "gpt-4o-mini"},
				{Provider: ProviderAnthropic, ModelID: "claude-3-5-haiku-20241022"},
			},
			FeatureGlobalDefault: {
				{Provider: ProviderOpenAI, ModelID: "gpt-4o-mini"},
				{Provider: ProviderAnthropic, ModelID: "claude-3-5-haiku-20241022"},
			},
		},
	}
}

// DefaultChain returns the built-in chain for a feature, falling back to the
// global default chain for unknown features.
func (l *LLMConfig) DefaultChain(feature string) []ModelRef {
	if chain, ok := l.DefaultChains[feature]; ok && len(chain) > 0 {
		return chain
	}
	return l.DefaultChains[FeatureGlobalDefault]
}

// APIKeyFor returns the configured key for a provider, empty when the
// provider is unconfigured.
func (l *LLMConfig) APIKeyFor(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return l.OpenAIAPIKey
	case ProviderAnthropic:
		return l.AnthropicAPIKey
	default:
		return ""
	}
}

// CatalogSeed describes a built-in model catalog row inserted on startup if
// missing. Prices are $/1M tokens; placeholder pricing is flagged so cost
// figures are visibly approximate until corrected.
type CatalogSeed struct {
	Provider             string
	ModelID              string
	DisplayName          string
	InputPricePerMTok    *float64
	OutputPricePerMTok   *float64
	Tier                 string
	PricingIsPlaceholder bool
	SortOrder            int
}

func price(v float64) *float64 { return &v }

// BuiltinCatalog returns the default model catalog.
func BuiltinCatalog() []CatalogSeed {
	return []CatalogSeed{
		{
			Provider: ProviderOpenAI, ModelID: "gpt-4o-mini",
			DisplayName:       "GPT-4o mini",
			InputPricePerMTok: price(0.15), OutputPricePerMTok: price(0.60),
			Tier: "standard", SortOrder: 10,
		},
		{
			Provider: ProviderOpenAI, ModelID: "gpt-4o",
			DisplayName:       "GPT-4o",
			InputPricePerMTok: price(2.50), OutputPricePerMTok: price(10.00),
			Tier: "standard", SortOrder: 20,
		},
		{
			Provider: ProviderAnthropic, ModelID: "claude-3-5-haiku-20241022",
			DisplayName:       "Claude 3.5 Haiku",
			InputPricePerMTok: price(0.80), OutputPricePerMTok: price(4.00),
			Tier: "standard", SortOrder: 30,
		},
		{
			Provider: ProviderAnthropic, ModelID: "claude-sonnet-4-20250514",
			DisplayName:          "Claude Sonnet 4",
			Tier:                 "priority",
			PricingIsPlaceholder: true,
			SortOrder:            40,
		},
	}
}
