package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/mdtools/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file> <docx|html|txt>",
	Short: "Convert a Markdown file to DOCX, HTML, or plain text",
	Long: `Convert renders a Markdown document to the chosen format. DOCX output
maps headings to the Word styles "Heading 1" through "Heading 6"; a
custom template document supplies replacement styles. HTML output is a
standalone page with an embedded stylesheet; TXT output strips all
markup while preserving paragraph breaks.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		format, err := convert.ParseFormat(args[1])
		if err != nil {
			return err
		}

		src, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", inputPath, err)
		}

		var template []byte
		templatePath, _ := cmd.Flags().GetString("template")
		if templatePath == "" {
			templatePath = viper.GetString("template")
		}
		if templatePath != "" {
			template, err = os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("read template %s: %w", templatePath, err)
			}
		}

		title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		out, err := convert.Convert(src, format, convert.Options{
			Title:    title,
			Template: template,
			Log:      slog.New(slog.NewTextHandler(os.Stderr, nil)),
		})
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + string(format)
		}
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}

		fmt.Printf("%s file saved to %s\n", strings.ToUpper(string(format)), outputPath)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (default: input name with new extension)")
	convertCmd.Flags().String("template", "", "DOCX template whose styles are reused for docx output")

	rootCmd.AddCommand(convertCmd)
}
