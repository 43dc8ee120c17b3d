package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/SayaAndy/saya-today-article-schema/internal/seo"
)

type Config struct {
	LogLevel          slog.Level    `json:"LogLevel"`
	Site              SiteConfig    `json:"Site" validate:"required"`
	Storage           StorageConfig `json:"Storage" validate:"required"`
	MaxConcurrentJobs int           `json:"MaxConcurrentJobs" validate:"required,min=1"`
	ArchiveName       string        `json:"ArchiveName"`
}

type SiteConfig struct {
	URL      string        `json:"URL" validate:"required,url"`
	Identity *seo.Identity `json:"Identity" validate:"omitempty"`
}

type StorageConfig struct {
	Type   string `json:"Type" validate:"required,oneof=b2 local"`
	Config any    `json:"Config" validate:"required"`
}

func (sc *StorageConfig) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Type   string          `json:"Type"`
		Config json.RawMessage `json:"Config"`
	}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	sc.Type = tmp.Type

	switch tmp.Type {
	case "b2":
		var b2Config B2Config
		if err := json.Unmarshal(tmp.Config, &b2Config); err != nil {
			return fmt.Errorf("unmarshal B2Config: %w", err)
		}
		sc.Config = &b2Config
	case "local":
		var localConfig LocalConfig
		if err := json.Unmarshal(tmp.Config, &localConfig); err != nil {
			return fmt.Errorf("unmarshal LocalConfig: %w", err)
		}
		sc.Config = &localConfig
	default:
		return fmt.Errorf("unsupported storage type: %s", tmp.Type)
	}

	return nil
}

type B2Config struct {
	BucketName     string `json:"BucketName" validate:"required,min=1"`
	Region         string `json:"Region" validate:"required,min=1"`
	Prefix         string `json:"Prefix"`
	KeyID          string `json:"KeyID"`
	ApplicationKey string `json:"ApplicationKey"`
}

type LocalConfig struct {
	Root string `json:"Root" validate:"required,min=1"`
}

const DefaultArchiveName = "archive.json"

// Identity returns the configured site identity, falling back to the
// built-in one.
func (c *Config) Identity() seo.Identity {
	if c.Site.Identity != nil {
		return *c.Site.Identity
	}
	return seo.DefaultIdentity
}

func LoadConfig(path string, config *Config) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	expandedFileBytes := []byte(os.ExpandEnv(string(fileBytes)))

	if err = json.Unmarshal(expandedFileBytes, config); err != nil {
		return err
	}

	if config.ArchiveName == "" {
		config.ArchiveName = DefaultArchiveName
	}

	return nil
}

func InitConfig(path string) (*Config, error) {
	config := &Config{}
	if err := LoadConfig(path, config); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
