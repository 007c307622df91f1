package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/aryankumar/cbench/pkg/bench"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newListCmd creates the benchmark list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured benchmarks",
		Long: `List the benchmarks defined in the cbench config file, in the order
"cbench suite" runs them, with the mode each one runs in.`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	benchmarks := manager.GetConfig().Benchmarks
	if len(benchmarks) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No benchmarks configured")
		return nil
	}

	// Text has no list rendering of its own; it shares the table
	outputFormat := viper.GetString("output")
	if outputFormat == "" || outputFormat == "text" {
		outputFormat = "table"
	}

	w := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		return outputJSON(w, benchmarks)
	case "yaml":
		return outputYAML(w, benchmarks)
	case "table":
		return outputTable(w, benchmarks, viper.GetBool("no-color") || manager.GetConfig().Defaults.NoColor)
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", outputFormat)
	}
}

func outputTable(w io.Writer, benchmarks []config.BenchmarkConfig, noColor bool) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Mode", "Iterations", "Threads", "Command"})

	// Configure table style
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	cyan := color.New(color.FgCyan)
	if noColor {
		cyan.DisableColor()
	}

	for _, b := range benchmarks {
		mode := bench.ModeFor(b.Marker())

		name := b.Name
		if !noColor {
			name = cyan.Sprint(name)
		}

		command := strings.Join(b.Command, " ")
		if len(command) > 60 {
			command = command[:57] + "..."
		}

		modeName := "sequential"
		if mode.IsConcurrent() {
			modeName = "concurrent"
		}

		table.Append([]string{
			name,
			modeName,
			strconv.Itoa(mode.Iterations()),
			strconv.Itoa(mode.Threads()),
			command,
		})
	}

	table.Render()

	// Print summary
	fmt.Fprintf(w, "\nTotal benchmarks: %d\n", len(benchmarks))

	return nil
}

func outputJSON(w io.Writer, benchmarks []config.BenchmarkConfig) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(benchmarks)
}

func outputYAML(w io.Writer, benchmarks []config.BenchmarkConfig) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(benchmarks)
}
