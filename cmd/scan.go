// Package cmd implements the command-line interface for cine.
package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/library"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// scanEntry is a single discovered media file.
type scanEntry struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Extension string `json:"extension"`
}

// scanResult is the output document of the scan command.
type scanResult struct {
	Roots []string    `json:"roots"`
	Count int         `json:"count"`
	Files []scanEntry `json:"files"`
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	scanCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
}

// scanCmd discovers the playable media files the given arguments resolve to.
var scanCmd = &cobra.Command{
	Use:   "scan [files or directories]",
	Short: "Discover playable media files",
	Long: "Discover the playable media files the given arguments resolve to.\n" +
		"Directories are walked recursively. Recognized extensions: " +
		strings.Join(library.Extensions(), " "),
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			output = lo.Must(cmd.Flags().GetString("output"))
		)

		files, err := library.Expand(args)
		handleErr(err)

		result := scanResult{
			Roots: args,
			Count: len(files),
			Files: lo.Map(files, func(path string, _ int) scanEntry {
				return scanEntry{
					Path:      path,
					Title:     util.FileStem(path),
					Extension: strings.ToLower(filepath.Ext(path)),
				}
			}),
		}

		if output != "" {
			data := lo.Must(json.MarshalIndent(result, "", "  "))
			handleErr(filesystem.API().WriteFile(output, data, 0644))
			fmt.Printf(
				"%s wrote %s to %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				util.Quantify(result.Count, "entry", "entries"),
				output,
			)
			return
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(result))
			return
		}

		for _, entry := range result.Files {
			cmd.Printf("%s %s %s\n",
				icon.Get(icon.Film),
				entry.Title,
				style.Faint(entry.Path),
			)
		}
		cmd.Println()
		cmd.Println(style.Bold(util.Quantify(result.Count, "playable file", "playable files")))
	},
}

func init() {
	scanCmd.AddCommand(scanSchemaCmd)
}

// scanSchemaCmd prints the JSON schema of the scan output document.
var scanSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the scan output",
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&scanResult{})
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(schema))
	},
}
