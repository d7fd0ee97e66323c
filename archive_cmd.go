package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listOutput  string
	clearYes    bool
	exportDraft bool
)

type entrySummary struct {
	ID          string   `json:"id" yaml:"id"`
	Locked      bool     `json:"locked" yaml:"locked"`
	LockedUntil string   `json:"lockedUntil" yaml:"lockedUntil"`
	CreatedOn   string   `json:"createdOn" yaml:"createdOn"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func summarize(a *Archive, entries []LockedEntry) []entrySummary {
	out := make([]entrySummary, 0, len(entries))
	for _, e := range entries {
		d := a.Detail(e)
		out = append(out, entrySummary{
			ID:          d.ID,
			Locked:      d.Locked,
			LockedUntil: d.LockedUntil,
			CreatedOn:   d.CreatedOn,
			Tags:        d.Tags,
		})
	}
	return out
}

func writeSummaries(w io.Writer, format string, locked, unlocked []entrySummary) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]entrySummary{"locked": locked, "unlocked": unlocked})
	case "yaml":
		return yaml.NewEncoder(w).Encode(map[string][]entrySummary{"locked": locked, "unlocked": unlocked})
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTATE\tLOCKED UNTIL\tCREATED ON\tTAGS")
		for _, s := range locked {
			fmt.Fprintf(tw, "%s\t%s locked\t%s\t-\t%s\n", s.ID, lockGlyph, s.LockedUntil, strings.Join(s.Tags, ", "))
		}
		for _, s := range unlocked {
			fmt.Fprintf(tw, "%s\tunlocked\t%s\t%s\t%s\n", s.ID, s.LockedUntil, s.CreatedOn, strings.Join(s.Tags, ", "))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse and manage locked capsules",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List capsules, locked first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		a := NewArchive(NewEntryStore(kv))
		view, err := a.Load(ctx)
		if err != nil {
			return err
		}
		if view.Empty() && listOutput == "table" {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries available")
			return nil
		}
		return writeSummaries(cmd.OutOrStdout(), listOutput, summarize(a, view.Locked), summarize(a, view.Unlocked))
	},
}

// findInView looks an entry up with its lock state recomputed.
func findInView(view ArchiveView, id string) (LockedEntry, error) {
	for _, e := range view.All() {
		if e.ID == id {
			return e, nil
		}
	}
	return LockedEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one capsule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		a := NewArchive(NewEntryStore(kv))
		view, err := a.Load(ctx)
		if err != nil {
			return err
		}
		e, err := findInView(view, args[0])
		if err != nil {
			return err
		}
		d := a.Detail(e)
		out := cmd.OutOrStdout()
		if d.Locked {
			fmt.Fprintf(out, "%s This capsule is locked.\nLocked until: %s\n", lockGlyph, d.LockedUntil)
		} else {
			fmt.Fprintf(out, "Created on: %s\nImage: %d bytes (use 'archive export')\n", d.CreatedOn, len(d.Image))
		}
		if len(d.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(d.Tags, ", "))
		}
		return nil
	},
}

var archiveExportCmd = &cobra.Command{
	Use:   "export [<id>] <file.png>",
	Short: "Write the image of an unlocked capsule (or the draft) to a PNG file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()
		store := NewEntryStore(kv)

		if exportDraft {
			if len(args) != 1 {
				return fmt.Errorf("--draft takes only the output file")
			}
			draft, ok, err := store.LoadDraft(ctx)
			if err != nil {
				return err
			}
			if !ok || draft == "" {
				return fmt.Errorf("no draft saved")
			}
			return writeDataURI(cfg.GetSavePath(args[0]), draft)
		}

		if len(args) != 2 {
			return fmt.Errorf("expected <id> and <file.png>")
		}
		view, err := NewArchive(store).Load(ctx)
		if err != nil {
			return err
		}
		e, err := findInView(view, args[0])
		if err != nil {
			return err
		}
		path := cfg.GetSavePath(args[1])
		if err := exportEntryImage(e, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	},
}

// stdinConfirmer asks on the terminal and accepts only "y" or "yes".
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c stdinConfirmer) Confirm(msg string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", msg)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every capsule and draft from the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		var c Confirmer = stdinConfirmer{in: os.Stdin, out: cmd.OutOrStdout()}
		if clearYes {
			c = confirmed(true)
		}
		if err := NewArchive(NewEntryStore(kv)).ClearAll(ctx, c); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Store cleared")
		return nil
	},
}

func init() {
	archiveListCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, json or yaml")
	archiveClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
	archiveExportCmd.Flags().BoolVar(&exportDraft, "draft", false, "Export the last draft snapshot instead of a capsule")

	archiveCmd.AddCommand(archiveListCmd, archiveShowCmd, archiveExportCmd, archiveClearCmd)
	rootCmd.AddCommand(archiveCmd)
}
