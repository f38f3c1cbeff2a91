package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/cli/formatter"
	"github.com/alexanderramin/courseload/internal/exporter"
	"github.com/alexanderramin/courseload/internal/importer"
	"github.com/spf13/cobra"
)

func newEstimateCmd(a *App) *cobra.Command {
	var (
		file        string
		interactive bool
		asJSON      bool
		xlsxPath    string
	)
	// Flags are declared against a scratch course; RunE copies the ones the
	// user set onto the real course after the file is loaded.
	var scratch importer.CourseFile

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate weekly hours for a course",
		Long: `Estimate the weekly hours a course asks of a student.

Inputs come from a course file (--file), individual flags, or an
interactive form (--interactive). Flags override values from the file,
and the form starts from both.`,
		Example: `  courseload estimate --reading-pages 30 --reading-density textbook --meetings-per-week 1 --meeting-hours 1.5
  courseload estimate --file course.yaml --json
  courseload estimate --file course.yaml --xlsx estimate.xlsx
  courseload estimate --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf := importer.NewCourseFile(a.Config.Course.DefaultWeeks)
			if file != "" {
				if err := importer.LoadCourseFile(file, &cf); err != nil {
					return err
				}
			}
			if err := applyChangedFlags(cmd.Flags(), &cf); err != nil {
				return err
			}
			if interactive {
				if a.IsInteractive == nil || !a.IsInteractive() {
					return errors.New("--interactive needs a terminal")
				}
				if err := runCourseForm(cmd.Context(), &cf); err != nil {
					return err
				}
			}

			if errs := importer.ValidateCourseFile(&cf); len(errs) > 0 {
				return fmt.Errorf("invalid course:\n%w", errors.Join(errs...))
			}

			resp, err := a.Estimator.Estimate(cmd.Context(), app.EstimateRequest{
				Title:  cf.Title,
				Course: importer.Convert(&cf),
			})
			if err != nil {
				return err
			}
			resp.Warnings = importer.UnknownLabels(&cf)

			if xlsxPath != "" {
				if err := writeWorkbook(xlsxPath, resp); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprint(out, formatter.FormatEstimate(resp))
			if xlsxPath != "" {
				fmt.Fprintln(out, formatter.Dim("Wrote "+xlsxPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Course file (YAML or JSON)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the course with an interactive form")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the estimate as JSON")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the estimate to an .xlsx workbook")

	// Weeks stay zero here so help does not advertise a default; the real
	// one comes from config.
	scratch = importer.NewCourseFile(0)
	bindCourseFlags(cmd.Flags(), &scratch)

	return cmd
}

func writeWorkbook(path string, resp *app.EstimateResponse) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing workbook: %w", cerr)
		}
	}()
	return exporter.WriteEstimate(f, resp)
}
