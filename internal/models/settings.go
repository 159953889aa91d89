package models

import (
	"errors"
	"fmt"
)

type EngineMode string

const (
	EngineModeClassic  EngineMode = "classic"
	EngineModeProfit   EngineMode = "profit"
	EngineModeAdaptive EngineMode = "adaptive"
)

var (
	ErrUnknownEngineMode        = errors.New("unknown engine mode")
	ErrInvalidCorrelation       = errors.New("bundle correlation threshold must be within [0, 1]")
	ErrInvalidCategoryItemLimit = errors.New("category item limits must not be negative")
)

func (m EngineMode) Valid() bool {
	switch m {
	case EngineModeClassic, EngineModeProfit, EngineModeAdaptive:
		return true
	}
	return false
}

type FeatureToggles struct {
	Bundles        bool `json:"bundles" yaml:"bundles" mapstructure:"bundles"`
	MoodFlow       bool `json:"mood_flow" yaml:"mood_flow" mapstructure:"mood_flow"`
	Upsells        bool `json:"upsells" yaml:"upsells" mapstructure:"upsells"`
	ScarcityBadges bool `json:"scarcity_badges" yaml:"scarcity_badges" mapstructure:"scarcity_badges"`
	PriceAnchoring bool `json:"price_anchoring" yaml:"price_anchoring" mapstructure:"price_anchoring"`
}

// EngineSettings is the per-restaurant engine configuration. Classic mode
// turns every ranking heuristic off and keeps the manual ordering.
type EngineSettings struct {
	Mode                       EngineMode     `json:"mode" yaml:"mode" mapstructure:"mode"`
	Features                   FeatureToggles `json:"features" yaml:"features" mapstructure:"features"`
	MaxItemsPerCategory        int            `json:"max_items_per_category" yaml:"max_items_per_category" mapstructure:"max_items_per_category"`
	MaxInitialItemsPerCategory int            `json:"max_initial_items_per_category" yaml:"max_initial_items_per_category" mapstructure:"max_initial_items_per_category"`
	BundleCorrelationThreshold float64        `json:"bundle_correlation_threshold" yaml:"bundle_correlation_threshold" mapstructure:"bundle_correlation_threshold"`
	PremiumPriceThreshold      float64        `json:"premium_price_threshold" yaml:"premium_price_threshold" mapstructure:"premium_price_threshold"`
	CurrencySymbol             string         `json:"currency_symbol" yaml:"currency_symbol" mapstructure:"currency_symbol"`
}

func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		Mode: EngineModeProfit,
		Features: FeatureToggles{
			Bundles:        true,
			MoodFlow:       true,
			Upsells:        true,
			ScarcityBadges: true,
			PriceAnchoring: true,
		},
		MaxItemsPerCategory:        DefaultMaxItemsPerCategory,
		MaxInitialItemsPerCategory: DefaultMaxInitialItemsPerCategory,
		BundleCorrelationThreshold: DefaultBundleCorrelationThreshold,
		PremiumPriceThreshold:      DefaultPremiumPriceThreshold,
	}
}

// Validate reports configuration mistakes. The engine itself never fails on
// bad settings (see Normalized); this is for config loading.
func (s EngineSettings) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEngineMode, s.Mode)
	}
	if s.BundleCorrelationThreshold < 0 || s.BundleCorrelationThreshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidCorrelation, s.BundleCorrelationThreshold)
	}
	if s.MaxItemsPerCategory < 0 || s.MaxInitialItemsPerCategory < 0 {
		return ErrInvalidCategoryItemLimit
	}
	return nil
}

// Normalized fills unset values and falls back to classic for an unknown mode.
// A zero correlation threshold counts as unset.
func (s EngineSettings) Normalized() EngineSettings {
	if s.Mode == "" {
		s.Mode = EngineModeProfit
	} else if !s.Mode.Valid() {
		s.Mode = EngineModeClassic
	}
	t := Finite(s.BundleCorrelationThreshold)
	if t <= 0 || t > 1 {
		t = DefaultBundleCorrelationThreshold
	}
	s.BundleCorrelationThreshold = t
	if p := Finite(s.PremiumPriceThreshold); p <= 0 {
		s.PremiumPriceThreshold = DefaultPremiumPriceThreshold
	}
	if s.MaxItemsPerCategory < 0 {
		s.MaxItemsPerCategory = 0
	}
	if s.MaxInitialItemsPerCategory < 0 {
		s.MaxInitialItemsPerCategory = 0
	}
	return s
}
