package ranking

// Config holds all scoring constants. Scores are unbounded positive numbers;
// only the relative ordering within one query is meaningful.
type Config struct {
	// General fallback scorer
	TermOccurrenceWeight float64 `yaml:"term_occurrence_weight"` // default: 2
	VerbatimQueryBonus   float64 `yaml:"verbatim_query_bonus"`   // default: 30
	DateRegexBonus       float64 `yaml:"date_regex_bonus"`       // default: 25
	PlaceKeywordBonus    float64 `yaml:"place_keyword_bonus"`    // default: 20
	ScheduleFieldBonus   float64 `yaml:"schedule_field_bonus"`   // default: 15
	LocationFieldBonus   float64 `yaml:"location_field_bonus"`   // default: 15
	KeywordOverlapBonus  float64 `yaml:"keyword_overlap_bonus"`  // default: 20
	CategoryOverlapBonus float64 `yaml:"category_overlap_bonus"` // default: 20

	// Specialized strategies
	KeywordMatchWeight float64 `yaml:"keyword_match_weight"` // default: 40, per curated phrase hit
	TriadBonus         float64 `yaml:"triad_bonus"`          // default: 500, all defining phrases present
	FloorScore         float64 `yaml:"floor_score"`          // default: 0.1, zero-match floor

	// Cost branches
	AmountBaseScore          float64 `yaml:"amount_base_score"`          // default: 50
	ModalityMatchBonus       float64 `yaml:"modality_match_bonus"`       // default: 1000
	ProvenanceMatchBonus     float64 `yaml:"provenance_match_bonus"`     // default: 800
	ProvenanceMismatchFactor float64 `yaml:"provenance_mismatch_factor"` // default: 0.05
	PaymentPlaceBonus        float64 `yaml:"payment_place_bonus"`        // default: 400
	FeeFieldBonus            float64 `yaml:"fee_field_bonus"`            // default: 100
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		TermOccurrenceWeight: 2,
		VerbatimQueryBonus:   30,
		DateRegexBonus:       25,
		PlaceKeywordBonus:    20,
		ScheduleFieldBonus:   15,
		LocationFieldBonus:   15,
		KeywordOverlapBonus:  20,
		CategoryOverlapBonus: 20,

		KeywordMatchWeight: 40,
		TriadBonus:         500,
		FloorScore:         0.1,

		AmountBaseScore:          50,
		ModalityMatchBonus:       1000,
		ProvenanceMatchBonus:     800,
		ProvenanceMismatchFactor: 0.05,
		PaymentPlaceBonus:        400,
		FeeFieldBonus:            100,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.TermOccurrenceWeight == 0 {
		c.TermOccurrenceWeight = d.TermOccurrenceWeight
	}
	if c.VerbatimQueryBonus == 0 {
		c.VerbatimQueryBonus = d.VerbatimQueryBonus
	}
	if c.DateRegexBonus == 0 {
		c.DateRegexBonus = d.DateRegexBonus
	}
	if c.PlaceKeywordBonus == 0 {
		c.PlaceKeywordBonus = d.PlaceKeywordBonus
	}
	if c.ScheduleFieldBonus == 0 {
		c.ScheduleFieldBonus = d.ScheduleFieldBonus
	}
	if c.LocationFieldBonus == 0 {
		c.LocationFieldBonus = d.LocationFieldBonus
	}
	if c.KeywordOverlapBonus == 0 {
		c.KeywordOverlapBonus = d.KeywordOverlapBonus
	}
	if c.CategoryOverlapBonus == 0 {
		c.CategoryOverlapBonus = d.CategoryOverlapBonus
	}
	if c.KeywordMatchWeight == 0 {
		c.KeywordMatchWeight = d.KeywordMatchWeight
	}
	if c.TriadBonus == 0 {
		c.TriadBonus = d.TriadBonus
	}
	if c.FloorScore == 0 {
		c.FloorScore = d.FloorScore
	}
	if c.AmountBaseScore == 0 {
		c.AmountBaseScore = d.AmountBaseScore
	}
	if c.ModalityMatchBonus == 0 {
		c.ModalityMatchBonus = d.ModalityMatchBonus
	}
	if c.ProvenanceMatchBonus == 0 {
		c.ProvenanceMatchBonus = d.ProvenanceMatchBonus
	}
	if c.ProvenanceMismatchFactor == 0 {
		c.ProvenanceMismatchFactor = d.ProvenanceMismatchFactor
	}
	if c.PaymentPlaceBonus == 0 {
		c.PaymentPlaceBonus = d.PaymentPlaceBonus
	}
	if c.FeeFieldBonus == 0 {
		c.FeeFieldBonus = d.FeeFieldBonus
	}
}
