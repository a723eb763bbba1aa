package stripe

import (
	"context"
	"testing"

	"github.com/lusterstudio/luster-backend/pkg/config"
)

func TestNewClientRequiresSecretKey(t *testing.T) {
	_, err := NewClient(context.Background(), config.StripeConfig{Env: "test"}, nil)
	if err == nil {
		t.Fatal("expected error for missing secret key")
	}
}

func TestNewClientValidatesKeyPrefixPerEnv(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.StripeConfig
		wantErr bool
	}{
		{"test key in test env", config.StripeConfig{SecretKey: "sk_test_abc", Env: "test"}, false},
		{"restricted test key", config.StripeConfig{SecretKey: "rk_test_abc", Env: "test"}, false},
		{"live key in test env", config.StripeConfig{SecretKey: "sk_live_abc", Env: "test"}, true},
		{"live key in live env", config.StripeConfig{SecretKey: "sk_live_abc", Env: "live"}, false},
		{"test key in live env", config.StripeConfig{SecretKey: "sk_test_abc", Env: "live"}, true},
		{"unknown env", config.StripeConfig{SecretKey: "sk_test_abc", Env: "staging"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tc.cfg, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.API() == nil {
				t.Fatal("expected initialized API client")
			}
		})
	}
}

func TestNewClientDefaultsToTestEnv(t *testing.T) {
	client, err := NewClient(context.Background(), config.StripeConfig{SecretKey: "sk_test_abc"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("expected test env, got %q", client.Environment())
	}
}
