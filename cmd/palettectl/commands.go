package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"palette-backend/internal/client"
	"palette-backend/internal/database"
	"palette-backend/internal/estimate"
	"palette-backend/internal/form"
	"palette-backend/internal/generator"
	"palette-backend/internal/logger"
	"palette-backend/internal/models"
	"palette-backend/internal/report"
	"palette-backend/internal/validation"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Submit two room photos and a budget tier, print the plan",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "space", Usage: "Photo of your current space", Required: true},
			&cli.StringFlag{Name: "inspiration", Usage: "Inspiration photo", Required: true},
			&cli.StringFlag{Name: "tier", Value: models.BudgetTierMid, Usage: "Budget tier (budget, mid, luxury)"},
			&cli.StringFlag{Name: "server", Value: "http://localhost:8080", Usage: "API base URL", EnvVars: []string{"PALETTE_SERVER"}},
			&cli.StringFlag{Name: "token", Usage: "Bearer token; photos are uploaded when set", EnvVars: []string{"PALETTE_TOKEN"}},
			&cli.StringFlag{Name: "pdf", Usage: "Write the plan as PDF to this file or directory"},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	ctx := c.Context
	f := form.New()

	space, err := readImage(c.String("space"))
	if err != nil {
		return err
	}
	if err := f.SetSpace(space); err != nil {
		return fmt.Errorf("space photo: %w", err)
	}
	inspiration, err := readImage(c.String("inspiration"))
	if err != nil {
		return err
	}
	if err := f.SetInspiration(inspiration); err != nil {
		return fmt.Errorf("inspiration photo: %w", err)
	}
	if err := f.SetBudgetTier(c.String("tier")); err != nil {
		return err
	}

	opts := []client.Option{}
	if tok := c.String("token"); tok != "" {
		opts = append(opts, client.WithToken(tok))
	}
	api := client.New(c.String("server"), opts...)

	var uploaded []string
	if c.String("token") != "" {
		space, inspiration := f.Images()
		uploads := []struct {
			kind string
			img  *form.Image
		}{{"space", space}, {"inspiration", inspiration}}
		for _, u := range uploads {
			up, err := api.Upload(ctx, u.kind, u.img.Filename, u.img.Data)
			if err != nil {
				discardUploads(ctx, c, api, uploaded)
				return fmt.Errorf("upload %s photo: %w", u.kind, err)
			}
			uploaded = append(uploaded, up.Path)
			fmt.Fprintf(c.App.Writer, "Uploaded %s photo: %s\n", u.kind, up.URL)
		}
	}

	result, err := f.Submit(ctx, api)
	if err != nil {
		discardUploads(ctx, c, api, uploaded)
		return cli.Exit(fmt.Sprintf("Generation Failed: %v", err), 1)
	}
	printPlan(c.App.Writer, result)

	if out := c.String("pdf"); out != "" {
		space, inspiration := f.Images()
		sections := append([]report.Section{
			report.ImageSection{Title: "Your Space", Data: space.Data},
			report.ImageSection{Title: "Inspiration", Data: inspiration.Data},
		}, report.Sections(result)...)
		return writePDF(ctx, c, out, sections)
	}
	return nil
}

// discardUploads removes photos stored for a run that did not produce a plan.
func discardUploads(ctx context.Context, c *cli.Context, api *client.Client, paths []string) {
	for _, p := range paths {
		if err := api.DeleteUpload(ctx, p); err != nil {
			fmt.Fprintf(c.App.ErrWriter, "Warning: could not remove %s: %v\n", p, err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "Removed %s\n", p)
	}
}

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Print the plan the mock generator returns",
		Action: func(c *cli.Context) error {
			gen, err := generator.NewMockGenerator(0)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(gen.Fixture())
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check a plan's cost arithmetic",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			result, err := loadResult(c.Args().First())
			if err != nil {
				return err
			}
			violations := estimate.Check(result)
			if len(violations) == 0 {
				fmt.Fprintln(c.App.Writer, "OK")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintln(c.App.Writer, v.String())
			}
			return cli.Exit(fmt.Sprintf("%d problem(s) found", len(violations)), 1)
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Render a plan JSON file as PDF",
		ArgsUsage: "[--out PATH] FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "Output file or directory"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() > 1 {
				return cli.Exit(fmt.Sprintf("unexpected arguments after FILE: %v (flags go before FILE)", c.Args().Tail()), 2)
			}
			result, err := loadResult(c.Args().First())
			if err != nil {
				return err
			}
			return writePDF(c.Context, c, c.String("out"), report.Sections(result))
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "database-url", Usage: "Postgres connection string", EnvVars: []string{"DATABASE_URL"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			log := logger.New(c.String("log-level"), "text")
			m, err := database.NewMigrator(c.String("database-url"), log)
			if err != nil {
				return err
			}
			defer m.Close()

			applied, err := m.Run(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Applied %d migration(s)\n", len(applied))
			for _, name := range applied {
				fmt.Fprintf(c.App.Writer, "  %s\n", name)
			}
			return nil
		},
	}
}

func readImage(path string) (*form.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &form.Image{
		Filename:    filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func loadResult(path string) (*models.GenerationResult, error) {
	if path == "" {
		return nil, cli.Exit("a plan JSON file is required", 2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var result models.GenerationResult
	if verr := validation.Decode(data, &result); verr != nil {
		return nil, fmt.Errorf("%s: %w", path, verr)
	}
	return &result, nil
}

func writePDF(ctx context.Context, c *cli.Context, out string, sections []report.Section) error {
	if info, err := os.Stat(out); (err == nil && info.IsDir()) || strings.HasSuffix(out, string(os.PathSeparator)) {
		out = filepath.Join(out, report.Filename(time.Now()))
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	pages, err := report.Export(ctx, sections, file)
	if err != nil {
		file.Close()
		os.Remove(out)
		return cli.Exit(fmt.Sprintf("PDF export failed: %v", err), 1)
	}
	if err := file.Close(); err != nil {
		os.Remove(out)
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s (%d pages)\n", out, pages)
	return nil
}

func printPlan(w io.Writer, r *models.GenerationResult) {
	fmt.Fprintf(w, "Your Design Plan\n\n")
	fmt.Fprintf(w, "Transformed design: %s\n\n", r.AfterImageURL)

	fmt.Fprintln(w, "What We Applied")
	for _, item := range r.WhatApplied {
		fmt.Fprintf(w, "  - %s\n", item)
	}

	fmt.Fprintf(w, "\nEstimated Project Cost: %s (%s)\n\n",
		estimate.FormatRange(r.EstimateRange.Low, r.EstimateRange.High), r.EstimateRange.Currency)

	fmt.Fprintln(w, "Detailed Cost Breakdown")
	for _, row := range r.Breakdown {
		fmt.Fprintf(w, "  %-24s materials %-20s labor %-20s total %s\n", row.Category,
			estimate.FormatRange(row.MaterialsLow, row.MaterialsHigh),
			estimate.FormatRange(row.LaborLow, row.LaborHigh),
			estimate.FormatRange(row.TotalLow, row.TotalHigh))
	}
	fmt.Fprintf(w, "  %-24s labor %s, total %s\n", "Totals",
		estimate.FormatRange(r.LaborSubtotal.Low, r.LaborSubtotal.High),
		estimate.FormatRange(r.TotalEstimate.Low, r.TotalEstimate.High))

	fmt.Fprintln(w, "\nWhere to Splurge")
	for _, tip := range r.UpgradeTips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
	fmt.Fprintln(w, "\nSmart Savings")
	for _, tip := range r.SavingsTips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}
