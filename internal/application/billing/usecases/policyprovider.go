package usecases

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/shared/config"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// PolicySource supplies the billing policy in force and per-case overrides.
type PolicySource interface {
	Policy(ctx context.Context) (billing.Policy, error)
	AllowExceed(ctx context.Context, caseID string) (bool, error)
}

// PolicyProvider overlays runtime settings on the configured defaults. A
// stored value that does not parse is ignored with a warning.
type PolicyProvider struct {
	settings setting.Repository
	defaults billing.Policy
	logger   logger.Interface
}

func NewPolicyProvider(settings setting.Repository, cfg config.BillingConfig, logger logger.Interface) *PolicyProvider {
	return &PolicyProvider{
		settings: settings,
		defaults: PolicyFromConfig(cfg),
		logger:   logger,
	}
}

// PolicyFromConfig converts the configured defaults, falling back to the
// built-in policy for zero values.
func PolicyFromConfig(cfg config.BillingConfig) billing.Policy {
	p := billing.DefaultPolicy()
	if cfg.MinIncrementHours > 0 {
		p.MinIncrementHours = decimal.NewFromFloat(cfg.MinIncrementHours)
	}
	p.InternalConferenceCapPerDay = decimal.NewFromFloat(cfg.InternalConferenceCapPerDay)
	if cfg.MaxSimultaneousBillable > 0 {
		p.MaxSimultaneousBillable = cfg.MaxSimultaneousBillable
	}
	p.TravelHalfRate = cfg.TravelHalfRate
	return p
}

// SettingDefaults renders the configured defaults as runtime setting values,
// so seeded rows and GET /settings agree with the config file.
func SettingDefaults(cfg config.BillingConfig) map[string]string {
	out := make(map[string]string, len(setting.DefaultValues))
	for k, v := range setting.DefaultValues {
		out[k] = v
	}

	p := PolicyFromConfig(cfg)
	out[setting.KeyBillingMinIncrement] = p.MinIncrementHours.String()
	out[setting.KeyInternalConferenceCap] = p.InternalConferenceCapPerDay.String()
	out[setting.KeyMaxSimultaneousBillable] = strconv.Itoa(p.MaxSimultaneousBillable)
	out[setting.KeyTravelHalfRate] = strconv.FormatBool(p.TravelHalfRate)
	out[setting.KeyRequireRetainer] = strconv.FormatBool(cfg.RequireRetainer)
	if cfg.InvoiceCadenceDays > 0 {
		out[setting.KeyInvoiceCadenceDays] = strconv.Itoa(cfg.InvoiceCadenceDays)
	}
	if cfg.InvoiceDueDays > 0 {
		out[setting.KeyInvoiceDueDays] = strconv.Itoa(cfg.InvoiceDueDays)
	}
	return out
}

func (p *PolicyProvider) Policy(ctx context.Context) (billing.Policy, error) {
	policy := p.defaults

	if v, ok, err := p.decimalSetting(ctx, setting.KeyBillingMinIncrement); err != nil {
		return policy, err
	} else if ok && v.IsPositive() {
		policy.MinIncrementHours = v
	}

	if v, ok, err := p.decimalSetting(ctx, setting.KeyInternalConferenceCap); err != nil {
		return policy, err
	} else if ok {
		policy.InternalConferenceCapPerDay = v
	}

	s, err := p.settings.Get(ctx, setting.KeyMaxSimultaneousBillable)
	if err != nil {
		return policy, err
	}
	if s != nil {
		if v, err := s.IntValue(); err != nil {
			p.logger.Warnw("ignoring invalid setting", "key", s.Key(), "value", s.Value(), "error", err)
		} else if v > 0 {
			policy.MaxSimultaneousBillable = v
		}
	}

	s, err = p.settings.Get(ctx, setting.KeyTravelHalfRate)
	if err != nil {
		return policy, err
	}
	if s != nil {
		if v, err := s.BoolValue(); err != nil {
			p.logger.Warnw("ignoring invalid setting", "key", s.Key(), "value", s.Value(), "error", err)
		} else {
			policy.TravelHalfRate = v
		}
	}

	return policy, nil
}

func (p *PolicyProvider) AllowExceed(ctx context.Context, caseID string) (bool, error) {
	s, err := p.settings.Get(ctx, setting.CaseAllowExceedKey(caseID))
	if err != nil {
		return false, err
	}
	return s != nil && s.Value() == "true", nil
}

func (p *PolicyProvider) decimalSetting(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	s, err := p.settings.Get(ctx, key)
	if err != nil {
		return decimal.Zero, false, err
	}
	if s == nil {
		return decimal.Zero, false, nil
	}
	v, err := s.DecimalValue()
	if err != nil {
		p.logger.Warnw("ignoring invalid setting", "key", key, "value", s.Value(), "error", err)
		return decimal.Zero, false, nil
	}
	return v, true, nil
}
