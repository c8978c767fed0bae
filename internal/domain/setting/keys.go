package setting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Runtime keys staff may change.
const (
	KeyInvoiceCadenceDays      = "invoice_cadence_days"
	KeyInvoiceDueDays          = "invoice_due_days"
	KeyLatePolicyType          = "late_policy_type"
	KeyLatePolicyValue         = "late_policy_value"
	KeyBillingMinIncrement     = "billing_min_increment"
	KeyTravelHalfRate          = "travel_half_rate"
	KeyInternalConferenceCap   = "internal_conference_cap"
	KeyMaxSimultaneousBillable = "max_simultaneous_billable"
	KeyRequireRetainer         = "require_retainer"

	caseAllowExceedPrefix = "case_allow_exceed_"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindDecimal
)

var writableKeys = map[string]valueKind{
	KeyInvoiceCadenceDays:      kindInt,
	KeyInvoiceDueDays:          kindInt,
	KeyLatePolicyType:          kindString,
	KeyLatePolicyValue:         kindDecimal,
	KeyBillingMinIncrement:     kindDecimal,
	KeyTravelHalfRate:          kindBool,
	KeyInternalConferenceCap:   kindDecimal,
	KeyMaxSimultaneousBillable: kindInt,
	KeyRequireRetainer:         kindBool,
}

// DefaultValues are written on first migration.
var DefaultValues = map[string]string{
	KeyInvoiceCadenceDays:      "14",
	KeyInvoiceDueDays:          "7",
	KeyLatePolicyType:          "apr",
	KeyLatePolicyValue:         "18",
	KeyBillingMinIncrement:     "0.1",
	KeyTravelHalfRate:          "true",
	KeyInternalConferenceCap:   "0.3",
	KeyMaxSimultaneousBillable: "3",
	KeyRequireRetainer:         "true",
}

// RuntimeKeys lists the writable keys in a stable order.
func RuntimeKeys() []string {
	keys := make([]string, 0, len(writableKeys))
	for k := range writableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CaseAllowExceedKey is the override that lets a case bill more than the
// simultaneous-billable maximum when set to "true".
func CaseAllowExceedKey(caseID string) string {
	return caseAllowExceedPrefix + caseID
}

func IsCaseAllowExceedKey(key string) bool {
	return strings.HasPrefix(key, caseAllowExceedPrefix) && len(key) > len(caseAllowExceedPrefix)
}

// ValidateWrite checks that key may be written by staff and value parses as its type.
// Counter keys are never writable this way.
func ValidateWrite(key, value string) error {
	if IsCaseAllowExceedKey(key) {
		return validateKind(key, kindBool, value)
	}
	kind, ok := writableKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidSettingKey, key)
	}
	return validateKind(key, kind, value)
}

func validateKind(key string, kind valueKind, value string) error {
	s := ReconstructSetting(key, value, 0, time.Time{})
	var err error
	switch kind {
	case kindInt:
		var v int
		v, err = s.IntValue()
		if err == nil && v < 0 {
			err = fmt.Errorf("%w: %s must not be negative", ErrInvalidValue, key)
		}
	case kindBool:
		_, err = s.BoolValue()
	case kindDecimal:
		var v decimal.Decimal
		v, err = s.DecimalValue()
		if err == nil && v.IsNegative() {
			err = fmt.Errorf("%w: %s must not be negative", ErrInvalidValue, key)
		}
	case kindString:
		if strings.TrimSpace(value) == "" {
			err = fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
	}
	return err
}
