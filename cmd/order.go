package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/NovaUNL/Supernova-sub001/core/config"
	"github.com/NovaUNL/Supernova-sub001/core/database"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"
	"github.com/NovaUNL/Supernova-sub001/feature/college"
	"github.com/NovaUNL/Supernova-sub001/feature/synopses"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Flags for order commands
	orderRelation     string
	orderParent       string
	orderFile         string
	orderConfirmEmpty bool
	orderDryRun       bool
)

// relationKind binds a registered relation kind to its reconciler options.
type relationKind struct {
	spec ordering.RelationSpec
	opts []ordering.Option
}

// relationKinds lists every relation kind the service manages. New kinds
// register here to become operable from the CLI.
var relationKinds = []relationKind{
	{spec: synopses.TopicSectionsSpec},
	{spec: synopses.SectionChildrenSpec, opts: []ordering.Option{ordering.WithSelfReferenceCheck()}},
	{spec: college.ClassSectionsSpec},
}

// orderCmd is the parent command for all ordering operations.
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect and mutate ordered relations",
	Long: `Operate on the registered ordered relations directly, without going
through the HTTP API. Useful for migrations and operator repairs.

Registered relation kinds: ` + strings.Join(kindNames(), ", ") + `.`,
}

// orderShowCmd prints the stored ordering of one parent.
var orderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored ordering of a parent",
	Long: `Prints the ordered children of a parent as JSON.

Examples:
  # Sections of a synopsis topic
  order show --relation topic-sections --parent calculus

  # Sections of a class
  order show --relation class-sections --parent analysis-1`,
	RunE: runOrderShow,
}

// orderApplyCmd replaces the ordering of one parent from a JSON file.
var orderApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Replace the ordering of a parent from a JSON file",
	Long: `Reads a JSON array of {"index": N, "id": "child"} entries and replaces
the parent's ordering with it. The same validation as the HTTP API applies:
indexes must be exactly 0..N-1 and no child may appear twice.

Examples:
  # Replace an ordering
  order apply --relation topic-sections --parent calculus --file order.json

  # Validate against current state without writing
  order apply --relation topic-sections --parent calculus --file order.json --dry-run

  # Detach every child
  order apply --relation topic-sections --parent calculus --file empty.json --confirm-empty`,
	RunE: runOrderApply,
}

func init() {
	orderCmd.PersistentFlags().StringVar(&orderRelation, "relation", "", "Relation kind to operate on")
	orderCmd.PersistentFlags().StringVar(&orderParent, "parent", "", "Parent id")

	orderApplyCmd.Flags().StringVar(&orderFile, "file", "", "JSON file with the proposed ordering")
	orderApplyCmd.Flags().BoolVar(&orderConfirmEmpty, "confirm-empty", false, "Allow an empty ordering (detaches every child)")
	orderApplyCmd.Flags().BoolVar(&orderDryRun, "dry-run", false, "Validate and show the resulting ordering without writing")

	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderApplyCmd)
	RootCmd.AddCommand(orderCmd)
}

func kindNames() []string {
	names := make([]string, len(relationKinds))
	for i, k := range relationKinds {
		names[i] = k.spec.Kind
	}
	sort.Strings(names)
	return names
}

func lookupKind(name string) (relationKind, error) {
	for _, k := range relationKinds {
		if k.spec.Kind == name {
			return k, nil
		}
	}
	return relationKind{}, fmt.Errorf("unknown relation kind %q (registered: %s)", name, strings.Join(kindNames(), ", "))
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runOrderShow(cmd *cobra.Command, args []string) error {
	if orderRelation == "" || orderParent == "" {
		return fmt.Errorf("--relation and --parent are required")
	}
	kind, err := lookupKind(orderRelation)
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}

	rec := ordering.New(ordering.NewGormStore(db, kind.spec), kind.opts...)
	rels, err := rec.ReadOrdered(context.Background(), orderParent)
	if err != nil {
		return err
	}
	return printJSON(rels)
}

func runOrderApply(cmd *cobra.Command, args []string) error {
	if orderRelation == "" || orderParent == "" || orderFile == "" {
		return fmt.Errorf("--relation, --parent and --file are required")
	}
	kind, err := lookupKind(orderRelation)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(orderFile)
	if err != nil {
		return fmt.Errorf("failed to read ordering file: %w", err)
	}
	var entries []ordering.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse ordering file: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	ctx := context.Background()
	opts := ordering.ReplaceOptions{ConfirmEmpty: orderConfirmEmpty}

	if orderDryRun {
		// Replay the stored ordering into a memory store and apply there, so
		// the full validation path runs without touching the database.
		store := ordering.NewGormStore(db, kind.spec)
		current, err := store.GetAll(ctx, orderParent)
		if err != nil {
			return err
		}
		mem := ordering.NewMemStore()
		if len(current) > 0 {
			err = mem.Update(ctx, func(tx ordering.Tx) error {
				return tx.InsertMany(ctx, current)
			})
			if err != nil {
				return err
			}
		}
		rec := ordering.New(mem, kind.opts...)
		rels, err := rec.ReplaceAll(ctx, orderParent, entries, opts)
		if err != nil {
			return err
		}
		fmt.Println("dry run, nothing written; resulting ordering:")
		return printJSON(rels)
	}

	rec := ordering.New(ordering.NewGormStore(db, kind.spec), kind.opts...)
	rels, err := rec.ReplaceAll(ctx, orderParent, entries, opts)
	if err != nil {
		return err
	}
	return printJSON(rels)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
