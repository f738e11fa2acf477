package credentials_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/platform/config"
	"github.com/jsamuelsen11/continuum/internal/platform/credentials"
)

func fullConfig() config.CredentialsConfig {
	return config.CredentialsConfig{
		Twitch: config.TwitchCredentials{ClientID: "cid", ClientSecret: "csecret"},
		IGDB:   config.IGDBCredentials{ClientID: "cid", AccessToken: "tok"},
		RAWG:   config.RAWGCredentials{APIKey: "rk"},
	}
}

func TestStore_Resolve(t *testing.T) {
	t.Parallel()

	store := credentials.NewStore(fullConfig())

	tests := []struct {
		kind credentials.Kind
		want credentials.Set
	}{
		{credentials.KindTwitch, credentials.Set{ClientID: "cid", ClientSecret: "csecret"}},
		{credentials.KindIGDB, credentials.Set{ClientID: "cid", AccessToken: "tok"}},
		{credentials.KindRAWG, credentials.Set{APIKey: "rk"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			got, err := store.Resolve(tt.kind)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestStore_Resolve_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.CredentialsConfig)
		kind    credentials.Kind
		wantKey string
	}{
		{
			name:    "twitch client id",
			mutate:  func(c *config.CredentialsConfig) { c.Twitch.ClientID = "" },
			kind:    credentials.KindTwitch,
			wantKey: "twitch.client_id",
		},
		{
			name:    "twitch secret",
			mutate:  func(c *config.CredentialsConfig) { c.Twitch.ClientSecret = "" },
			kind:    credentials.KindTwitch,
			wantKey: "twitch.client_secret",
		},
		{
			name: "twitch both missing names first",
			mutate: func(c *config.CredentialsConfig) {
				c.Twitch.ClientID = ""
				c.Twitch.ClientSecret = ""
			},
			kind:    credentials.KindTwitch,
			wantKey: "twitch.client_id",
		},
		{
			name:    "igdb client id",
			mutate:  func(c *config.CredentialsConfig) { c.IGDB.ClientID = "" },
			kind:    credentials.KindIGDB,
			wantKey: "igdb.client_id",
		},
		{
			name:    "igdb token blank",
			mutate:  func(c *config.CredentialsConfig) { c.IGDB.AccessToken = "   " },
			kind:    credentials.KindIGDB,
			wantKey: "igdb.access_token",
		},
		{
			name:    "rawg key",
			mutate:  func(c *config.CredentialsConfig) { c.RAWG.APIKey = "" },
			kind:    credentials.KindRAWG,
			wantKey: "rawg.api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := fullConfig()
			tt.mutate(&cfg)

			_, err := credentials.NewStore(cfg).Resolve(tt.kind)
			if !errors.Is(err, domain.ErrMissingCredentials) {
				t.Fatalf("Resolve() error = %v, want ErrMissingCredentials", err)
			}

			var missing *domain.MissingCredentialError
			if !errors.As(err, &missing) {
				t.Fatalf("Resolve() error = %T, want *domain.MissingCredentialError", err)
			}
			if missing.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", missing.Key, tt.wantKey)
			}
		})
	}
}

func TestStore_Resolve_OtherKindsUnaffected(t *testing.T) {
	t.Parallel()

	cfg := fullConfig()
	cfg.RAWG.APIKey = ""
	store := credentials.NewStore(cfg)

	if _, err := store.Resolve(credentials.KindIGDB); err != nil {
		t.Errorf("Resolve(igdb) error: %v, want nil when only rawg is missing", err)
	}
}

func TestStore_Resolve_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	cfg := fullConfig()
	cfg.RAWG.APIKey = "  rk\n"

	got, err := credentials.NewStore(cfg).Resolve(credentials.KindRAWG)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got.APIKey != "rk" {
		t.Errorf("APIKey = %q, want \"rk\"", got.APIKey)
	}
}

func TestStore_Resolve_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := credentials.NewStore(fullConfig()).Resolve("steam")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Resolve(\"steam\") error = %v, want ErrValidation", err)
	}
}

func TestStore_Resolve_Concurrent(t *testing.T) {
	t.Parallel()

	store := credentials.NewStore(fullConfig())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Resolve(credentials.KindIGDB); err != nil {
				t.Errorf("Resolve() error: %v", err)
			}
		}()
	}
	wg.Wait()
}
