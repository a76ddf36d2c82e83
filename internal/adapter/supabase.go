package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/utils"
)

type supabaseProber struct {
	client *utils.HTTPClient
	table  string

	logger *logger.Logger
}

// NewSupabaseProber constructs a PostgREST implementation of [RemoteProber].
// Every probe issues
//
//	GET {url}/rest/v1/{table}?select=status&limit=1
//
// with the anon key sent both as the apikey header and as a bearer token.
//
// Returns an error if supabaseCfg.URL is empty or cannot be parsed as a valid
// URL.
func NewSupabaseProber(supabaseCfg config.Supabase, healthCfg config.Health, logger *logger.Logger) (RemoteProber, error) {
	baseURL, err := normalizeBaseURL(supabaseCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if key := strings.TrimSpace(supabaseCfg.AnonKey); key != "" {
		client.
			SetHeader("apikey", key).
			SetAuthToken(key)
	}

	table := healthCfg.Table
	if table == "" {
		table = config.DefaultHealthTable
	}

	logger.Debug().Str("url", baseURL).Str("table", table).Msg("creating supabase prober")

	return &supabaseProber{client: client, table: table, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Probe implements [RemoteProber]. Only a 2xx answer counts as success; the
// response body is not inspected.
func (s *supabaseProber) Probe(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("table", s.table).
		SetQueryParams(map[string]string{
			"select": "status",
			"limit":  "1",
		}).
		Get("/rest/v1/{table}")
	if err != nil {
		return fmt.Errorf("supabase probe request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("supabase probe: %w", err)
	}

	return nil
}
