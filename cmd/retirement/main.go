package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/compare"
	"github.com/eriiiic/Retirement/internal/config"
	"github.com/eriiiic/Retirement/internal/output"
	"github.com/eriiiic/Retirement/internal/transform"
)

// simpleCLILogger implements calculation.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Retirement capital projection CLI",
	Long:  "Deterministic retirement capital projections: accumulation, decumulation and scenario comparison",
}

var projectCmd = &cobra.Command{
	Use:   "project [scenario-file]",
	Short: "Project the scenarios in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		outputFormat, _ := cmd.Flags().GetString("format")
		scenarioName, _ := cmd.Flags().GetString("scenario")
		debugMode, _ := cmd.Flags().GetBool("debug")

		parser := config.NewInputParser()
		sf, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		formatter, err := output.GetFormatterByName(outputFormat)
		if err != nil {
			return err
		}

		for _, sc := range sf.Scenarios {
			if scenarioName != "" && sc.Name != scenarioName {
				continue
			}
			report, err := engine.RunScenario(sc.Name, sc.Parameters)
			if err != nil {
				return err
			}
			rendered, err := formatter.Format(report)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(rendered); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare the scenarios in a file against a base scenario",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			registry := transform.CreateBuiltInTemplates()
			for _, name := range registry.List() {
				t, _ := registry.Get(name)
				fmt.Printf("%-22s %s\n", name, t.Description)
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("a scenario file is required")
		}
		inputFile := args[0]
		baseName, _ := cmd.Flags().GetString("base")
		withStr, _ := cmd.Flags().GetString("with")
		outputFormat, _ := cmd.Flags().GetString("format")
		debugMode, _ := cmd.Flags().GetBool("debug")

		var templates []string
		if withStr != "" {
			templates = strings.Split(withStr, ",")
			for i := range templates {
				templates[i] = strings.TrimSpace(templates[i])
			}
		}

		parser := config.NewInputParser()
		sf, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		compareEngine := compare.NewCompareEngine(engine)
		compSet, err := compareEngine.Compare(context.Background(), sf, compare.CompareOptions{
			BaseScenarioName: baseName,
			Templates:        templates,
			SourcePath:       inputFile,
		})
		if err != nil {
			return err
		}

		switch outputFormat {
		case "table", "":
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(compSet))
		case "csv":
			cf := &compare.CSVFormatter{}
			rendered, err := cf.Format(compSet)
			if err != nil {
				return err
			}
			os.Stdout.Write(rendered)
		case "json":
			jf := &compare.JSONFormatter{}
			rendered, err := jf.Format(compSet)
			if err != nil {
				return err
			}
			os.Stdout.Write(rendered)
			fmt.Println()
		default:
			return fmt.Errorf("unsupported format: %s (supported: table, csv, json)", outputFormat)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file without projecting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		sf, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d scenario(s) valid\n", args[0], len(sf.Scenarios))
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "retirement %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json, pdf)")
	projectCmd.Flags().String("scenario", "", "Project only the named scenario")
	projectCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().String("base", "", "Base scenario name (default: first scenario in the file)")
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to derive from the base scenario")
	compareCmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
