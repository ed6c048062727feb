package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Whitelist           Whitelist `koanf:"whitelist"`
	KeepSecuritySchemes bool      `koanf:"keep-security-schemes"`
	ValidateSpec        bool      `koanf:"validate"`
}

// Whitelist holds the three allow-lists driving the filters. Order is kept
// as declared; membership is the only filtering criterion.
type Whitelist struct {
	Operations      []string `koanf:"operations"`
	Schemas         []string `koanf:"schemas"`
	SecuritySchemes []string `koanf:"security-schemes"`
}

// defaults is the published openbar contract: the subset of the internal API
// exposed to third-party clients.
func defaults() map[string]any {
	return map[string]any{
		"whitelist.operations": []string{
			// Authentication
			"connectCard",     // POST /auth/card
			"connectPassword", // POST /auth/password
			"logout",          // GET /logout
			// Account
			"getAccount", // GET /account
			// Categories & Items
			"getCategories",      // GET /categories
			"getCategory",        // GET /categories/{categoryId}
			"getCategoryPicture", // GET /categories/{categoryId}/picture
			"getCategoryItems",   // GET /categories/{category_id}/items
			"getItemPicture",     // GET /categories/{category_id}/items/{item_id}
		},
		"whitelist.schemas": []string{
			"UUID",
			"ErrorCodes",
			"Messages",
			"HTTPError",
			// Account
			"Account",
			"AccountRole",
			"AccountState",
			"AccountRestrictions",
			"AccountPriceRole",
			// Categories & Items
			"Category",
			"Item",
			"ItemState",
			"ItemPrices",
			"MenuItem",
			"MenuCategory",
			"Fournisseur",
		},
		"whitelist.security-schemes": []string{
			"not_onboarded",
			"auth",
			"local_token",
		},
	}
}

// BindFlags binds the trimming flags to the command
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: oastrim.yaml)")
	flags.StringSlice("operations", nil, "Operation ids to retain")
	flags.StringSlice("schemas", nil, "Component schema names to retain")
	flags.StringSlice("security-schemes", nil, "Security scheme names to retain")
	flags.Bool("keep-security-schemes", false, "Pass security schemes through unfiltered")
	flags.Bool("validate", false, "Validate the input document before filtering")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading default whitelists: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat("oastrim.yaml"); err == nil {
			configFile = "oastrim.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	getBool := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}

	if v := getStringSlice("operations"); len(v) > 0 {
		m["whitelist.operations"] = v
	}
	if v := getStringSlice("schemas"); len(v) > 0 {
		m["whitelist.schemas"] = v
	}
	if v := getStringSlice("security-schemes"); len(v) > 0 {
		m["whitelist.security-schemes"] = v
	}
	if cmd.Flags().Changed("keep-security-schemes") {
		m["keep-security-schemes"] = getBool("keep-security-schemes")
	}
	if cmd.Flags().Changed("validate") {
		m["validate"] = getBool("validate")
	}

	return m
}

func (c *Config) Validate() error {
	for _, id := range c.Whitelist.Operations {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("whitelist contains a blank operation id")
		}
	}
	for _, name := range c.Whitelist.Schemas {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("whitelist contains a blank schema name")
		}
	}
	for _, name := range c.Whitelist.SecuritySchemes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("whitelist contains a blank security scheme name")
		}
	}
	return nil
}
