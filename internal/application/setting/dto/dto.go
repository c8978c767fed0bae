package dto

import "github.com/hartlaw/hartlaw/internal/domain/setting"

// SettingResponse is one runtime setting and whether it was stored or defaulted.
type SettingResponse struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

type SettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// UpdateSettingRequest is the body of a single-key write.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func ToSettingsResponse(values []setting.ConfigValue) *SettingsResponse {
	out := &SettingsResponse{Settings: make([]SettingResponse, 0, len(values))}
	for _, v := range values {
		out.Settings = append(out.Settings, SettingResponse{Key: v.Key, Value: v.Value, Source: v.Source})
	}
	return out
}
