package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"minfo/internal/logging"
	"minfo/internal/mediainfo"
	"minfo/internal/metadata"
)

const absentMarker = "<not found>"

type inspectReport struct {
	Path        string            `json:"path"`
	Properties  map[string]string `json:"properties,omitempty"`
	Missing     []string          `json:"missing,omitempty"`
	Keys        map[string]string `json:"keys,omitempty"`
	MissingKeys []string          `json:"missing_keys,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var propertyFlag string
	var keyFlag string
	var all bool
	var jsonOut bool
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Resolve metadata properties from media files",
		Long: `Inspect runs exiftool and ffprobe against each file and resolves the
requested logical properties and raw keys.

Logical properties (-p) are normalized names such as focal_length or iso that
are looked up across both tools' output; raw keys (-k) probe the exif mapping
first and the first stream second, with no transformation. With no selection
flags every known property is resolved.

Examples:
  minfo inspect EXAMPLE.MOV
  minfo inspect -p focal_length,iso -k "Focus Mode" EXAMPLE.MOV
  minfo inspect --json *.MOV`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			properties, err := parsePropertyList(propertyFlag)
			if err != nil {
				return err
			}
			keys := splitList(keyFlag)
			if all || (len(properties) == 0 && len(keys) == 0) {
				properties = metadata.Properties()
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			opts, cleanup := ctx.loadOptions(cfg, logger, noCache)
			defer cleanup()

			reports := make([]inspectReport, 0, len(args))
			for _, path := range args {
				info, err := mediainfo.Load(cmd.Context(), opts, path)
				if err != nil {
					return fmt.Errorf("inspect %s: %w", path, err)
				}
				logger.Debug("inspected file",
					logging.String(logging.FieldPath, info.Path),
					logging.Int("streams", len(info.Streams)))
				reports = append(reports, buildReport(info, properties, keys))
			}

			if jsonOut {
				return writeJSON(cmd, reports)
			}
			printReports(cmd.OutOrStdout(), reports, properties, keys)
			return nil
		},
	}

	cmd.Flags().StringVarP(&propertyFlag, "property", "p", "", "Comma-separated logical property names")
	cmd.Flags().StringVarP(&keyFlag, "key", "k", "", "Comma-separated raw key names")
	cmd.Flags().BoolVar(&all, "all", false, "Resolve every known property")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the probe cache for this run")
	return cmd
}

func parsePropertyList(flag string) ([]metadata.Property, error) {
	names := splitList(flag)
	properties := make([]metadata.Property, 0, len(names))
	for _, name := range names {
		prop, err := metadata.ParseProperty(name)
		if err != nil {
			return nil, err
		}
		properties = append(properties, prop)
	}
	return properties, nil
}

func splitList(flag string) []string {
	var items []string
	for _, item := range strings.Split(flag, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func buildReport(info *mediainfo.Info, properties []metadata.Property, keys []string) inspectReport {
	report := inspectReport{Path: info.Path}

	if len(properties) > 0 {
		report.Properties = make(map[string]string, len(properties))
		for _, prop := range properties {
			value, ok, _ := info.Resolve(prop)
			if !ok {
				report.Missing = append(report.Missing, prop.String())
				continue
			}
			report.Properties[prop.String()] = value.String()
		}
		sort.Strings(report.Missing)
	}

	if len(keys) > 0 {
		report.Keys = make(map[string]string, len(keys))
		for _, key := range keys {
			value, ok := info.LookupKey(key)
			if !ok {
				report.MissingKeys = append(report.MissingKeys, key)
				continue
			}
			report.Keys[key] = value
		}
		sort.Strings(report.MissingKeys)
	}

	return report
}

func printReports(out io.Writer, reports []inspectReport, properties []metadata.Property, keys []string) {
	for _, report := range reports {
		fmt.Fprintln(out, report.Path)
		for _, prop := range properties {
			value, ok := report.Properties[prop.String()]
			if !ok {
				value = absentMarker
			}
			fmt.Fprintf(out, "\t%s: %s\n", prop, value)
		}
		for _, key := range keys {
			value, ok := report.Keys[key]
			if !ok {
				value = absentMarker
			}
			fmt.Fprintf(out, "\t%s: %s\n", key, value)
		}
	}
}
