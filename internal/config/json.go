package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted either as strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Name         string `json:"service_name"`
		Version      string `json:"version"`
		Environment  string `json:"environment"`
		LogLevel     string `json:"log_level"`
		EmailHMACKey string `json:"email_hmac_key"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	WebAuthn struct {
		RPID       string   `json:"rp_id"`
		RPName     string   `json:"rp_name"`
		Origins    []string `json:"origins"`
		SessionTTL Duration `json:"session_ttl"`
	} `json:"webauthn,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		GRPCAddress        string   `json:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		MaxBodyBytes       int64    `json:"max_body_bytes"`
		DisableDebugRoutes bool     `json:"disable_debug_routes"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
		DBProbeInterval      Duration `json:"db_probe_interval"`
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
			Name:         jsonCfg.App.Name,
			Version:      jsonCfg.App.Version,
			Environment:  jsonCfg.App.Environment,
			LogLevel:     jsonCfg.App.LogLevel,
			EmailHMACKey: jsonCfg.App.EmailHMACKey,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		WebAuthn: WebAuthn{
			RPID:       jsonCfg.WebAuthn.RPID,
			RPName:     jsonCfg.WebAuthn.RPName,
			Origins:    jsonCfg.WebAuthn.Origins,
			SessionTTL: time.Duration(jsonCfg.WebAuthn.SessionTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			GRPCAddress:        jsonCfg.Server.GRPCAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			MaxBodyBytes:       jsonCfg.Server.MaxBodyBytes,
			DisableDebugRoutes: jsonCfg.Server.DisableDebugRoutes,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
			DBProbeInterval:      time.Duration(jsonCfg.Workers.DBProbeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
