package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/docs"
	"github.com/alexisbeaulieu97/eventui/internal/stories"
)

type showcaseOptions struct {
	stories []string
	golden  string
	check   bool
	update  bool
	plain   bool
}

func newShowcaseCmd(app *AppContext) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render the component showcase from the story document",
		Long: `Render every story: its description, the live component and the resolved
plan. With --golden the pages are compared with (--check) or written to
(--update) snapshot files instead of being printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, app, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.stories, "story", nil, "Story id to render, repeatable (default: all plus the index)")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Snapshot directory")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare pages with the snapshots in --golden")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the snapshots in --golden")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable colour")
	cmd.MarkFlagsMutuallyExclusive("check", "update")

	return cmd
}

func runShowcase(cmd *cobra.Command, app *AppContext, opts *showcaseOptions) error {
	log := app.Log
	snapshot := opts.check || opts.update
	if snapshot && opts.golden == "" {
		return newCommandError("showcase", "validating flags", errors.New("--check and --update need --golden"), "Pass --golden <dir>.")
	}

	doc, err := stories.LoadOrDefault(app.Settings.Stories)
	if err != nil {
		return newCommandError("showcase", "loading stories", err, "Fix the story document or unset the stories setting.")
	}
	log.WithFields(map[string]any{"stories": len(doc.Stories), "title": doc.Title}).Debug("stories loaded")

	out := cmd.OutOrStdout()
	// Snapshots use the document width and no colour so they do not depend
	// on the terminal.
	width := doc.Width
	if !snapshot {
		width = renderWidth(app.Settings.Width, out)
	}
	renderer, err := docs.NewRenderer(docs.Options{
		Theme: app.Theme,
		Width: width,
		Plain: snapshot || opts.plain || !isTerminal(out),
	})
	if err != nil {
		return err
	}

	site := docs.NewSite(doc, renderer)
	pages, err := site.Pages(opts.stories...)
	if err != nil {
		return newCommandError("showcase", "rendering pages", err, "Run 'eventui showcase' without --story to list every story.")
	}

	switch {
	case opts.update:
		if err := docs.UpdateGolden(opts.golden, pages); err != nil {
			return newCommandError("showcase", "writing snapshots", err, "Check that the golden directory is writable.")
		}
		fmt.Fprintf(out, "Updated %d snapshots in %s\n", len(pages), opts.golden)
		return nil

	case opts.check:
		if err := docs.CheckGolden(opts.golden, pages); err != nil {
			log.Error(err, "snapshot check failed")
			return newCommandError("showcase", "checking snapshots", err, "Run 'eventui showcase --golden "+opts.golden+" --update' if the change is intended.")
		}
		fmt.Fprintf(out, "%d snapshots match\n", len(pages))
		return nil
	}

	summary, err := site.Write(out, pages)
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{
		"rendered": summary.Rendered,
		"expected": summary.Expected,
		"failed":   summary.Failed,
	}).Info("showcase rendered")

	if summary.Failed > 0 {
		var failed []error
		for _, page := range pages {
			if page.Failed() {
				failed = append(failed, page.Err)
			}
		}
		return newCommandError("showcase", fmt.Sprintf("rendering %d of %d pages", summary.Failed, summary.Rendered),
			errors.Join(failed...), "Fix the stories above or declare expect_error for intentional failures.")
	}
	return nil
}
