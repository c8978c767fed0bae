package seeds

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

//go:embed rates.yaml
var ratesYAML []byte

type rateFile struct {
	Roles []rateRow `yaml:"roles"`
}

type rateRow struct {
	Role        string `yaml:"role"`
	Standard    string `yaml:"standard"`
	HighProfile string `yaml:"high-profile"`
	SCOTUS      string `yaml:"scotus"`
}

// DefaultRates parses the embedded rate table, one entry per role and tier,
// in file order.
func DefaultRates() ([]*rate.Entry, error) {
	return parseRates(ratesYAML)
}

func parseRates(data []byte) ([]*rate.Entry, error) {
	var file rateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rate seed: %w", err)
	}

	entries := make([]*rate.Entry, 0, len(file.Roles)*len(rate.Tiers()))
	for _, row := range file.Roles {
		byTier := map[rate.Tier]string{
			rate.TierStandard:    row.Standard,
			rate.TierHighProfile: row.HighProfile,
			rate.TierSCOTUS:      row.SCOTUS,
		}
		for _, tier := range rate.Tiers() {
			amount, err := decimal.NewFromString(byTier[tier])
			if err != nil {
				return nil, fmt.Errorf("rate seed %q/%s: %w", row.Role, tier, err)
			}
			entry, err := rate.NewEntry(row.Role, tier, amount)
			if err != nil {
				return nil, fmt.Errorf("rate seed %q/%s: %w", row.Role, tier, err)
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// SeedRates fills the rate table when it is empty. A populated table is left alone.
func SeedRates(ctx context.Context, repo rate.Repository, log logger.Interface) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debugw("rate table already seeded", "rows", count)
		return nil
	}

	entries, err := DefaultRates()
	if err != nil {
		return err
	}
	if err := repo.SaveAll(ctx, entries); err != nil {
		return err
	}

	log.Infow("seeded rate table", "rows", len(entries))
	return nil
}

// SeedSettings writes the default runtime settings that are not present yet.
// A nil defaults map uses setting.DefaultValues.
func SeedSettings(ctx context.Context, repo setting.Repository, defaults map[string]string, log logger.Interface) error {
	if defaults == nil {
		defaults = setting.DefaultValues
	}
	if err := repo.SeedDefaults(ctx, defaults); err != nil {
		return err
	}
	log.Infow("default settings ensured", "keys", len(defaults))
	return nil
}
