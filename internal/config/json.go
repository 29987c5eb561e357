// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name          string   `json:"name"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogLevel      string   `json:"log_level"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Keystore struct {
			Driver string `json:"driver"`
			Path   string `json:"path"`
		} `json:"keystore,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		CORSAllowOrigins []string `json:"cors_allow_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	OAuth struct {
		GoogleClientID string `json:"google_client_id"`
		AppleClientID  string `json:"apple_client_id"`
		GoogleJWKSURL  string `json:"google_jwks_url"`
		AppleJWKSURL   string `json:"apple_jwks_url"`
	} `json:"oauth,omitempty"`

	Limiter struct {
		MaxAttempts int      `json:"max_attempts"`
		Window      Duration `json:"window"`
	} `json:"limiter,omitempty"`

	Session struct {
		Revalidate bool `json:"revalidate"`
	} `json:"session,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:          jsonCfg.App.Name,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogLevel:      jsonCfg.App.LogLevel,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Keystore: Keystore{
				Driver: jsonCfg.Storage.Keystore.Driver,
				Path:   jsonCfg.Storage.Keystore.Path,
			},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			GRPCAddress:      jsonCfg.Server.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowOrigins: jsonCfg.Server.CORSAllowOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		OAuth: OAuth{
			GoogleClientID: jsonCfg.OAuth.GoogleClientID,
			AppleClientID:  jsonCfg.OAuth.AppleClientID,
			GoogleJWKSURL:  jsonCfg.OAuth.GoogleJWKSURL,
			AppleJWKSURL:   jsonCfg.OAuth.AppleJWKSURL,
		},
		Limiter: Limiter{
			MaxAttempts: jsonCfg.Limiter.MaxAttempts,
			Window:      time.Duration(jsonCfg.Limiter.Window),
		},
		Session: Session{Revalidate: jsonCfg.Session.Revalidate},
		Workers: Workers{HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval)},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
