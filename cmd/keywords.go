package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/lexical"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the keywords derived from a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		keywords(cmd)
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().String("job", "", "job description file (.txt, .md, .pdf, .docx)")
}

func keywords(cmd *cobra.Command) {
	config, logger := setup()

	jobPath, _ := cmd.Flags().GetString("job")
	text, err := readJob(jobPath)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	extractor := lexical.NewExtractor(lexical.NewProvider(config.Lexical.Language, logger))
	kws := extractor.Keywords(text)

	logger.Info("derived keywords",
		zap.Int("count", len(kws)),
		zap.String("lemmatizer", extractor.LemmatizerName()),
	)
	for _, kw := range kws {
		fmt.Println(kw)
	}
}
