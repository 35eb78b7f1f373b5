package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"outflow/internal/campaign"
	"outflow/internal/catalog"
	"outflow/internal/config"
	"outflow/internal/perception"
	"outflow/internal/types"
)

var (
	synthTemplate string
	synthName     string
	synthOut      string
	synthFormat   string
)

// synthCmd synthesizes a workflow from a free-text campaign request.
var synthCmd = &cobra.Command{
	Use:   "synth [request]",
	Short: "Synthesize an outreach workflow from a free-text request",
	Long: `Parses a natural-language campaign request into a brief, matches it
against the template library, and synthesizes a complete workflow.

Examples:
  outflow synth "aggressive 5-step cold email campaign for SaaS founders"
  outflow synth --template /tpl_recruiting_pipeline --name "Q3 engineers"
  outflow synth "gentle linkedin outreach to CTOs" --out q3.yaml`,
	RunE: runSynth,
}

// parseCmd shows the structured brief extracted from a request.
var parseCmd = &cobra.Command{
	Use:   "parse [request]",
	Short: "Parse a request into a campaign brief without synthesizing",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

// matchCmd shows which library template a request would match.
var matchCmd = &cobra.Command{
	Use:   "match [request]",
	Short: "Show the library template a request matches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

func init() {
	synthCmd.Flags().StringVar(&synthTemplate, "template", "", "Instantiate a library template by id instead of parsing a request")
	synthCmd.Flags().StringVar(&synthName, "name", "", "Workflow name override")
	synthCmd.Flags().StringVarP(&synthOut, "out", "o", "", "Write the workflow to a file")
	synthCmd.Flags().StringVarP(&synthFormat, "format", "f", "", "Export format: yaml or json (default from config)")
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// briefFromArgs parses the request text and fills unset fields from config.
func briefFromArgs(args []string, cfg *config.Config) (*types.Brief, error) {
	text := joinArgs(args)
	brief := perception.ParseIntent(text)
	if brief == nil {
		return nil, fmt.Errorf("could not find a campaign request in %q", text)
	}
	if brief.Tone == "" {
		brief.Tone = cfg.Defaults.Tone
	}
	if brief.Cadence == "" {
		brief.Cadence = cfg.Defaults.Cadence
	}
	if brief.StepCount == 0 {
		brief.StepCount = cfg.Defaults.StepCount
	}
	return brief, nil
}

func loadConfig() (*config.Config, error) {
	path := config.DefaultConfigPath()
	if workspace != "" {
		path = filepath.Join(workspace, ".outflow", "config.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", path, err)
	}
	return cfg, nil
}

func runSynth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	assembler := campaign.NewAssembler(catalog.Default())

	var wf *types.Workflow
	if synthTemplate != "" {
		var overrides *campaign.TemplateOverrides
		if synthName != "" {
			overrides = &campaign.TemplateOverrides{Name: synthName}
		}
		wf, err = assembler.SynthesizeFromTemplate(synthTemplate, overrides)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("supply a request or --template")
		}
		brief, err := briefFromArgs(args, cfg)
		if err != nil {
			return err
		}
		logger.Info("Synthesizing workflow",
			zap.String("goal", brief.Goal),
			zap.Int("steps", brief.StepCount))
		wf, err = assembler.Synthesize(brief)
		if err != nil {
			return err
		}
		if synthName != "" {
			wf.Name = synthName
		}
	}

	fmt.Println(renderWorkflow(wf))

	if synthOut != "" {
		format := synthFormat
		if format == "" {
			format = cfg.Export.Format
		}
		if err := exportWorkflow(wf, synthOut, format); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%s)\n", synthOut, format)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	brief, err := briefFromArgs(args, cfg)
	if err != nil {
		return err
	}

	data, err := marshalAs(brief, "yaml")
	if err != nil {
		return err
	}
	fmt.Println(headingStyle.Render("Campaign brief"))
	fmt.Print(string(data))
	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	brief, err := briefFromArgs(args, cfg)
	if err != nil {
		return err
	}

	tpl := catalog.Default().Match(brief)
	if tpl == nil {
		fmt.Println("No library template matches this request; synthesis would start from scratch.")
		return nil
	}
	fmt.Println(renderTemplate(tpl))
	return nil
}

// exportWorkflow writes the workflow to path in the given format.
func exportWorkflow(wf *types.Workflow, path, format string) error {
	data, err := marshalAs(wf, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workflow: %w", err)
	}
	return nil
}
