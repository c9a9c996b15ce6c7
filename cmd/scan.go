package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/scan"
	"github.com/spigell/cv-screener/internal/screening"
)

const (
	PromptShowRanking         = "Show ranking"
	PromptShowReport          = "Show report"
	PromptResultsToFile       = "Dump results to file"
	PromptAppendToExcludeFile = "Append to exclude file"
	PromptExit                = "Exit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowRanking, PromptShowReport, PromptResultsToFile, PromptAppendToExcludeFile, PromptExit},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Assess every résumé in a directory and rank the candidates",
	Run: func(cmd *cobra.Command, _ []string) {
		runScan(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("job", "", "job description file (.txt, .md, .pdf, .docx)")
	scanCmd.Flags().String("dir", ".", "directory with résumés")
	scanCmd.Flags().String("skills", "", "comma separated required skills. Derived from the job description when unset.")
	scanCmd.Flags().BoolP("auto-approve", "y", false, "print the ranking and exit without the interactive menu")
	scanCmd.Flags().StringP("exclude-file", "e", "", "file with already scanned résumés to exclude. Default is unset.")
	scanCmd.Flags().Bool("keep-empty", false, "assess documents without extractable text instead of skipping them")

	viper.BindPFlag("scan.exclude-file", scanCmd.Flags().Lookup("exclude-file"))
}

func runScan(cmd *cobra.Command) {
	ctx := context.Background()
	config, logger := setup()

	jobPath, _ := cmd.Flags().GetString("job")
	jobText, err := readJob(jobPath)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	var skills []string
	if cmd.Flags().Changed("skills") {
		raw, _ := cmd.Flags().GetString("skills")
		skills = screening.ParseSkills(raw)
	}

	assessor, err := newAssessor(config, config.Scoring, logger)
	if err != nil {
		logger.Fatal("creating an assessor", zap.Error(err))
	}

	runner, err := scan.NewRunner(config.Scan, assessor, logger)
	if err != nil {
		logger.Fatal("creating a scan runner", zap.Error(err))
	}
	keepEmpty, _ := cmd.Flags().GetBool("keep-empty")
	applyFilterFlags(runner, keepEmpty)

	dir, _ := cmd.Flags().GetString("dir")
	docs, err := scan.Discover(dir)
	if err != nil {
		logger.Fatal("listing résumés", zap.Error(err))
	}

	logger.Info("starting the scan", zap.String("dir", dir), zap.Int("documents", docs.Len()))

	run, err := runner.Run(ctx, jobText, skills, docs)
	if err != nil {
		logger.Fatal("scan failed", zap.Error(err))
	}

	if len(run.Results) == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		printRanking(run)
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, run); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func applyFilterFlags(runner *scan.Runner, keepEmpty bool) {
	if keepEmpty {
		scan.DisableByName(runner.Filters(), scan.EmptyTextFilterName, "disabled by --keep-empty")
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, run *scan.Run) error {
	switch action {
	case PromptShowRanking:
		printRanking(run)
		return nil
	case PromptShowReport:
		return showReport(run)
	case PromptResultsToFile:
		filename, err := run.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		excludeFile := strings.TrimSpace(config.Scan.ExcludeFile)
		if excludeFile == "" {
			logger.Warn("exclude file is not configured", zap.String("hint", "set scan.exclude-file or pass --exclude-file"))
			return nil
		}
		if err := run.AppendToExcludeFile(excludeFile); err != nil {
			return err
		}
		logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.Int("count", len(run.Results)))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printRanking(run *scan.Run) {
	fmt.Printf("scan %s: %d assessed, %d skipped\n", run.ID, len(run.Results), len(run.Skipped))
	for _, line := range run.Ranking() {
		fmt.Println(line)
	}
	for _, s := range run.Skipped {
		fmt.Printf("    skipped %s (%s): %s\n", s.Name, s.Step, s.Reason)
	}
}

func showReport(run *scan.Run) error {
	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(run.Names(), PromptBack),
	}

	_, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	result := run.Find(selected)
	if result == nil {
		return fmt.Errorf("there is no such candidate %s", selected)
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}
