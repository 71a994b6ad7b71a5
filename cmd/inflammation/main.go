package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inflammation/adapters/excel"
	"inflammation/domain/study"
	"inflammation/internal/config"
	"inflammation/internal/errors"
	"inflammation/internal/inflammation"
	"inflammation/internal/logging"
	"inflammation/internal/report"
	"inflammation/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logging.New("main").Debug("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		err = classifyError(err)
		fmt.Fprintf(os.Stderr, "[%s] %v\n", errors.GetCode(err), err)
		os.Exit(1)
	}
}

// classifyError tags errors that did not come from a command, such as unknown
// flags or a wrong argument count, as invalid input.
func classifyError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	return errors.WithCode(errors.CodeInvalidInput, err)
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "inflammation",
		Short:         "Daily statistics for inflammation study data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = *loaded
			logging.SetLevel(logging.ParseLevel(cfg.Log.Level))
			return nil
		},
	}

	rootCmd.AddCommand(
		newStatsCmd(cfg),
		newGenerateCmd(cfg),
		newPatientsCmd(cfg),
	)

	return rootCmd
}

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var format, sheet string

	cmd := &cobra.Command{
		Use:   "stats [data-file]",
		Short: "Print daily mean, max, min and standard deviation",
		Long: `Load an inflammation table (one row per patient, one column per day, no header)
and print the daily statistics across all patients.

The file defaults to INFLAMMATION_DATA_FILE. Files ending in .xlsx are read from
the first worksheet, anything else is read as CSV.

Example: inflammation stats data/inflammation-01.csv --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dataFile(cfg, args)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Report.Format
			}

			table, err := loadTable(path, sheet)
			if err != nil {
				return err
			}

			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			return report.Render(cmd.OutOrStdout(), title, inflammation.Summarize(table), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text|markdown|html (default REPORT_FORMAT)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from .xlsx files (default first sheet)")

	return cmd
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	var patients, days int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [output-file]",
		Short: "Write a synthetic inflammation table",
		Long: `Generate a deterministic synthetic study table. The output is written as an
Excel workbook when the file name ends in .xlsx and as CSV otherwise.

Example: inflammation generate data/synthetic.csv --patients 60 --days 40 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genConfig := testkit.DefaultInflammationConfig()
			genConfig.Patients = cfg.Generator.Patients
			genConfig.Days = cfg.Generator.Days
			genConfig.Seed = cfg.Generator.Seed
			if cmd.Flags().Changed("patients") {
				genConfig.Patients = patients
			}
			if cmd.Flags().Changed("days") {
				genConfig.Days = days
			}
			if cmd.Flags().Changed("seed") {
				genConfig.Seed = seed
			}

			table, err := testkit.NewInflammationGenerator(genConfig).Generate()
			if err != nil {
				return errors.WithCode(errors.CodeInvalidInput, err)
			}

			if err := excel.WriteTable(args[0], table); err != nil {
				return errors.Wrapf(err, "failed to write %s", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d patients x %d days to %s\n", genConfig.Patients, genConfig.Days, args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&patients, "patients", 60, "Number of patients (default GENERATOR_PATIENTS)")
	cmd.Flags().IntVar(&days, "days", 40, "Number of study days (default GENERATOR_DAYS)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic output (default GENERATOR_SEED)")

	return cmd
}

func newPatientsCmd(cfg *config.Config) *cobra.Command {
	var doctorName, sheet string

	cmd := &cobra.Command{
		Use:   "patients [data-file]",
		Short: "Assign every patient in a table to a doctor and list them",
		Long: `Create one patient per table row, with one observation per day, assign them
to a doctor and print each patient's observation count and last reading.

Example: inflammation patients data/inflammation-01.csv --doctor "Dr. Grey"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dataFile(cfg, args)
			if err != nil {
				return err
			}

			table, err := loadTable(path, sheet)
			if err != nil {
				return err
			}

			doctor := study.NewDoctor(doctorName)
			for _, patient := range study.PatientsFromTable(table, patientName) {
				doctor.AddPatient(patient)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d patients\n", doctor, len(doctor.Patients()))
			for _, patient := range doctor.Patients() {
				last, ok := patient.LastObservation()
				if !ok {
					fmt.Fprintf(out, "  %s: no observations\n", patient)
					continue
				}
				fmt.Fprintf(out, "  %s: %d observations, day %d = %s\n",
					patient, len(patient.Observations()), last.Day(), last)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&doctorName, "doctor", "Dr. Study", "Name of the doctor the patients are assigned to")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from .xlsx files (default first sheet)")

	return cmd
}

func loadTable(path, sheet string) (*mat.Dense, error) {
	table, err := excel.NewDataReader(path).WithSheet(excel.SheetConfig{Sheet: sheet}).ReadTable()
	if err != nil {
		return nil, errors.FromLoadError(path, err)
	}
	return table, nil
}

func patientName(row int) string {
	return fmt.Sprintf("patient-%02d", row+1)
}

func dataFile(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Data.File == "" {
		return "", errors.ConfigInvalid("no data file given and INFLAMMATION_DATA_FILE is not set")
	}
	return cfg.Data.File, nil
}
