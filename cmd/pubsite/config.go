package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"pubsite/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set site configuration values",
	Long: `Get or set site configuration values in site.yml.

Usage:
  pubsite config                                  # Show all config
  pubsite config orcid-id                         # Get specific value
  pubsite config orcid-id 0000-0002-1825-0097     # Set value

Keys:
  name                 Displayed name
  title                Displayed title/affiliation line
  scholar-profile-url  Google Scholar profile URL (empty disables the link)
  orcid-id             ORCID iD (empty disables the link)
  output-dir           Build output directory (default: public)
  data-path            Publications artifact path (default: data/publications.json)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// configKeys maps normalized keys to getters and setters on Config.
var configKeys = map[string]struct {
	get func(*config.Config) string
	set func(*config.Config, string)
}{
	"name": {
		get: func(c *config.Config) string { return c.Name },
		set: func(c *config.Config, v string) { c.Name = v },
	},
	"title": {
		get: func(c *config.Config) string { return c.Title },
		set: func(c *config.Config, v string) { c.Title = v },
	},
	"scholar-profile-url": {
		get: func(c *config.Config) string { return c.ScholarProfileURL },
		set: func(c *config.Config, v string) { c.ScholarProfileURL = v },
	},
	"orcid-id": {
		get: func(c *config.Config) string { return c.ORCIDID },
		set: func(c *config.Config, v string) { c.ORCIDID = v },
	},
	"output-dir": {
		get: func(c *config.Config) string { return c.OutputDir },
		set: func(c *config.Config, v string) { c.OutputDir = v },
	},
	"data-path": {
		get: func(c *config.Config) string { return c.DataPath },
		set: func(c *config.Config, v string) { c.DataPath = v },
	},
}

// configKeyOrder keeps `pubsite config` output stable.
var configKeyOrder = []string{"name", "title", "scholar-profile-url", "orcid-id", "output-dir", "data-path"}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindSite()
	cfg := mustLoadConfig(root)

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			all := make(map[string]string, len(configKeys))
			for key, entry := range configKeys {
				all[normalizeKey(key)] = entry.get(cfg)
			}
			outputJSON(all)
		} else {
			for _, key := range configKeyOrder {
				fmt.Printf("%-20s %s\n", key+":", configKeys[key].get(cfg))
			}
		}
		return nil
	}

	key := normalizeKey(args[0])
	entry, ok := configKeys[key]
	if !ok {
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	// One arg: get specific value
	if len(args) == 1 {
		if jsonOutput {
			outputJSON(map[string]string{key: entry.get(cfg)})
		} else {
			fmt.Println(entry.get(cfg))
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	entry.set(cfg, value)

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if jsonOutput {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	} else {
		fmt.Printf("Updated %s to %s\n", key, value)
	}

	return nil
}

// normalizeKey converts key formats (orcid-id, orcid_id, OrcidID) to the
// canonical dashed form.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
