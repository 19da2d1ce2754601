package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"admin": map[string]any{
			"demoOtp":    "1234",
			"sessionTtl": "12h",
		},
		"store": map[string]any{
			"path": "dukaan.db",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ADMIN_DEMOOTP", want: "admin.demoOtp"},
		{envKey: "ADMIN_SESSIONTTL", want: "admin.sessionTtl"},
		{envKey: "STORE_PATH", want: "store.path"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
