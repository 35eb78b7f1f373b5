package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outflow/internal/catalog"
	"outflow/internal/types"
)

var templatesCategory string

// templatesCmd groups the template library commands.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse the campaign template library",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library templates",
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show [template-id]",
	Short: "Show one template in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

var templatesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search templates by name, description, category, or tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTemplatesSearch,
}

func init() {
	templatesListCmd.Flags().StringVarP(&templatesCategory, "category", "c", "", "Filter by category, e.g. /cold_outreach")
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	c := catalog.Default()

	if templatesCategory != "" {
		matches := c.ByCategory(types.Category(templatesCategory))
		if len(matches) == 0 {
			return fmt.Errorf("no templates in category %s (known: %v)", templatesCategory, c.Categories())
		}
		printTemplateRows(matches)
		return nil
	}

	for _, cat := range c.Categories() {
		fmt.Println(headingStyle.Render(string(cat)))
		printTemplateRows(c.ByCategory(cat))
		fmt.Println()
	}
	return nil
}

func printTemplateRows(templates []*types.Template) {
	for _, tpl := range templates {
		fmt.Printf("  %-28s %-32s %d steps, %s, %s\n",
			labelStyle.Render(tpl.ID), tpl.Name, len(tpl.Steps), tpl.Duration, tpl.Difficulty)
	}
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	tpl, err := catalog.Default().Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(renderTemplate(tpl))
	fmt.Println()
	for _, s := range tpl.Steps {
		fmt.Printf("%s %s", stepStyle.Render(fmt.Sprintf("step %d", s.Order)), channelStyle.Render(string(s.Channel)))
		if s.Delay > 0 {
			fmt.Printf("  %s", labelStyle.Render(fmt.Sprintf("+%d %s", s.Delay, delayNoun(s.Delay, s.DelayUnit))))
		}
		fmt.Println()
		if s.Subject != "" {
			fmt.Printf("  subject: %s\n", s.Subject)
		}
	}
	return nil
}

func runTemplatesSearch(cmd *cobra.Command, args []string) error {
	matches := catalog.Default().Search(joinArgs(args))
	if len(matches) == 0 {
		fmt.Println("No templates match.")
		return nil
	}
	printTemplateRows(matches)
	return nil
}
