package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"outflow/internal/campaign"
	"outflow/internal/catalog"
	"outflow/internal/enrollment"
	"outflow/internal/types"
)

var (
	simulateRecipients int
	simulateReplyRate  float64
	simulateSeed       int64
)

// simulateCmd dry-runs a synthesized workflow against a simulated fleet of
// recipients, showing how the branching conditions play out.
var simulateCmd = &cobra.Command{
	Use:   "simulate [request]",
	Short: "Dry-run a workflow's branching against simulated recipients",
	Long: `Synthesizes a workflow from the request and walks a fleet of simulated
recipients through it. Engagement is drawn at random per recipient and step,
so reply-aware conditions fire the way they would in a live campaign.

Example:
  outflow simulate "cold email campaign for founders" --recipients 20 --reply-rate 0.3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateRecipients, "recipients", 10, "Fleet size")
	simulateCmd.Flags().Float64Var(&simulateReplyRate, "reply-rate", 0.2, "Probability a recipient replies to any given step")
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "Random seed (0 = nondeterministic)")
}

// randomEngagement simulates open/click/reply behavior. Clicks imply opens;
// replies imply both.
type randomEngagement struct {
	r         *rand.Rand
	replyRate float64
}

func (p *randomEngagement) Snapshot(_ context.Context, _ string, _ types.WorkflowStep) (enrollment.Engagement, error) {
	if p.r.Float64() < p.replyRate {
		return enrollment.Engagement{Opened: true, Clicked: true, Replied: true}, nil
	}
	opened := p.r.Float64() < 0.5
	return enrollment.Engagement{Opened: opened, Clicked: opened && p.r.Float64() < 0.3}, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	brief, err := briefFromArgs(args, cfg)
	if err != nil {
		return err
	}

	wf, err := campaign.NewAssembler(catalog.Default()).Synthesize(brief)
	if err != nil {
		return err
	}

	var r *rand.Rand
	if simulateSeed != 0 {
		r = rand.New(rand.NewSource(simulateSeed))
	} else {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	sent := make(map[string]int)
	send := func(_ context.Context, recipientID string, _ types.WorkflowStep) error {
		sent[recipientID]++
		return nil
	}
	// The coordinator serializes per recipient, but the simulated fleet
	// shares one rand; run it single-threaded via Advance instead of Run.
	coord, err := enrollment.NewCoordinator(wf, &randomEngagement{r: r, replyRate: simulateReplyRate}, send)
	if err != nil {
		return err
	}

	ids := make([]string, simulateRecipients)
	for i := range ids {
		ids[i] = fmt.Sprintf("/lead_%03d", i+1)
		if err := coord.Enroll(ids[i]); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	outcomes := make(map[enrollment.State]int)
	for _, id := range ids {
		for {
			d, err := coord.Advance(ctx, id)
			if err != nil {
				return err
			}
			if d.State.Terminal() {
				outcomes[d.State]++
				break
			}
		}
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("Simulated %d recipients through %q", simulateRecipients, wf.Name)))
	totalSends := 0
	for _, id := range ids {
		totalSends += sent[id]
	}
	fmt.Printf("%s %d total, %.1f per recipient\n",
		labelStyle.Render("sends:"), totalSends, float64(totalSends)/float64(simulateRecipients))
	for _, state := range []enrollment.State{enrollment.StateCompleted, enrollment.StateEnded} {
		if outcomes[state] > 0 {
			fmt.Printf("%s %d\n", labelStyle.Render(string(state)+":"), outcomes[state])
		}
	}
	return nil
}
