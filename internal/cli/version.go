package cli

import (
	"fmt"
	"io"

	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/internal/util"
	"github.com/aryankumar/cbench/pkg/version"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the cbench version, commit, build time and platform in any output format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), version.Get(), viper.GetString("output"))
		},
	}
}

func writeVersion(w io.Writer, info version.Info, formatName string) error {
	format, ok := output.ParseFormat(formatName)
	if !ok {
		return util.NewValidationError("output", formatName, "supported formats are text, table, json, yaml")
	}

	switch format {
	case output.FormatJSON:
		data, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal version info to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, data)
		return err
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(info)
	case output.FormatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Component", "Value"})
		table.SetBorder(false)
		table.SetHeaderLine(false)
		table.SetColumnSeparator("")
		table.SetCenterSeparator("")
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.AppendBulk([][]string{
			{"Version", info.Version},
			{"Commit", info.Commit},
			{"Build Time", info.BuildTime},
			{"Go Version", info.GoVersion},
			{"Platform", info.Platform},
		})
		table.Render()
		return nil
	default:
		_, err := fmt.Fprintln(w, info.String())
		return err
	}
}
