package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hakimdiab/seamnote/internal/pkg/dbutil"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port                   int              `json:"port"`
	JWTSecret              string           `json:"jwt_secret"`
	JWTTTLHours            int              `json:"jwt_ttl_hours"`
	ConsultantUser         string           `json:"consultant_user"`
	ConsultantPasswordHash string           `json:"consultant_password_hash"`
	LogConfig              logger.LogConfig `json:"log_config"`
	Database               DatabaseConfig   `json:"database"`
	AI                     AIConfig         `json:"ai"`
	NER                    NERConfig        `json:"ner"`
	FileStore              FileStoreConfig  `json:"file_store"`
	Jobs                   JobsConfig       `json:"jobs"`
	Cluster                ClusterConfig    `json:"cluster"`
	CORSOrigins            []string         `json:"cors_origins"`
}

type DatabaseConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

type AIConfig struct {
	Provider      string      `json:"provider"`
	Model         string      `json:"model"`
	EmbedProvider string      `json:"embed_provider"`
	EmbedModel    string      `json:"embed_model"`
	TimeoutSecs   int         `json:"timeout_secs"`
	Data          interface{} `json:"data"`
	EmbedData     interface{} `json:"embed_data"`
}

type NERConfig struct {
	Endpoint    string `json:"endpoint"`
	TimeoutSecs int    `json:"timeout_secs"`
}

type FileStoreConfig struct {
	Type string   `json:"type"`
	Dir  string   `json:"dir"`
	S3   S3Config `json:"s3"`
}

type S3Config struct {
	Endpoint  string `json:"endpoint"`
	SecretID  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Prefix    string `json:"prefix"`
	UseSSL    bool   `json:"use_ssl"`
}

type JobsConfig struct {
	EmbeddingBackfillSpec string `json:"embedding_backfill_spec"`
	ReclusterSpec         string `json:"recluster_spec"`
}

type ClusterConfig struct {
	DistanceThreshold float64 `json:"distance_threshold"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.ConsultantUser == "" {
		cfg.ConsultantUser = "consultant"
	}
	if cfg.ConsultantPasswordHash == "" {
		return nil, fmt.Errorf("consultant_password_hash is required")
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	switch cfg.Database.Driver {
	case "":
		cfg.Database.Driver = dbutil.DriverSQLite
	case dbutil.DriverSQLite, dbutil.DriverPostgres:
	default:
		return nil, fmt.Errorf("database.driver must be %s or %s", dbutil.DriverSQLite, dbutil.DriverPostgres)
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.AI.Model == "" {
		return nil, fmt.Errorf("ai.model is required")
	}
	if cfg.AI.EmbedProvider == "" {
		cfg.AI.EmbedProvider = cfg.AI.Provider
	}
	if cfg.AI.EmbedModel == "" {
		return nil, fmt.Errorf("ai.embed_model is required")
	}
	if cfg.AI.EmbedData == nil {
		cfg.AI.EmbedData = cfg.AI.Data
	}
	if cfg.AI.TimeoutSecs == 0 {
		cfg.AI.TimeoutSecs = 60
	}
	if cfg.NER.TimeoutSecs == 0 {
		cfg.NER.TimeoutSecs = 10
	}
	if cfg.FileStore.Type == "" {
		cfg.FileStore.Type = "local"
	}
	switch cfg.FileStore.Type {
	case "local":
		if cfg.FileStore.Dir == "" {
			return nil, fmt.Errorf("file_store.dir is required for local store")
		}
	case "s3":
		if cfg.FileStore.S3.Endpoint == "" || cfg.FileStore.S3.Bucket == "" || cfg.FileStore.S3.SecretID == "" || cfg.FileStore.S3.SecretKey == "" {
			return nil, fmt.Errorf("file_store.s3 endpoint/bucket/secret_id/secret_key are required for s3 store")
		}
		if cfg.FileStore.S3.Region == "" {
			cfg.FileStore.S3.Region = "auto"
		}
	default:
		return nil, fmt.Errorf("file_store.type must be local or s3")
	}
	if cfg.Jobs.EmbeddingBackfillSpec == "" {
		cfg.Jobs.EmbeddingBackfillSpec = "@every 10m"
	}
	if cfg.Jobs.ReclusterSpec == "" {
		cfg.Jobs.ReclusterSpec = "0 3 * * *"
	}
	if cfg.Cluster.DistanceThreshold == 0 {
		cfg.Cluster.DistanceThreshold = 0.5
	}
	return &cfg, nil
}
