// Package cli implements the command-line surface of deltags.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/open-technology-foundation/deltags/internal/adapters/driven/config/file"
	"github.com/open-technology-foundation/deltags/internal/core/domain"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
	"github.com/open-technology-foundation/deltags/internal/core/services"
	"github.com/open-technology-foundation/deltags/internal/logger"
	"github.com/open-technology-foundation/deltags/internal/parsers"
	"github.com/open-technology-foundation/deltags/internal/postprocessors"
)

// version is overridden at build time via -ldflags.
var version = "0.3.0"

// Services and stores are created lazily in ensureServices.
// Tests inject their own instances.
var (
	detagService driving.DetagService
	configStore  driven.ConfigStore
)

// Flag values for the root command.
var (
	outputPath   string
	deleteTags   []string
	keywordSpecs []string
	selectors    []string
	parserName   string
	matchAttrs   bool
	sanitizeFlag bool
	watchFlag    bool
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "deltags [input-file]",
	Short: "Remove tags and comments from HTML",
	Long: `deltags removes specified tags and all comments from an HTML document
and writes the remainder as minimized HTML. Input is read from a file or
standard input; output goes to a file or standard output.

Parsers:
  html5      parses like a browser; most tolerant of broken markup (default)
  tokenizer  fastest; keeps markup as written, no implied html/head/body
  strict     dependency-free; rejects mismatched or unclosed tags

Examples:
  deltags my.html -d head,nav
  deltags -d head,nav < my.html > mynew.html
  deltags my.html -d head,nav -d svg,path -O mynew.html
  deltags my.html -k 'div sometext' -s 'div.ads'`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&outputPath, "output", "O", "", "output file for detagged HTML (default stdout)")
	f.StringArrayVarP(&deleteTags, "delete", "d", nil, "tags to remove, as a comma-separated list (repeatable)")
	f.StringArrayVarP(&keywordSpecs, "kw-delete", "k", nil, `remove tags containing a keyword: "tag keyword" (repeatable)`)
	f.StringArrayVarP(&selectors, "css-delete", "s", nil, "remove nodes matching a CSS selector (repeatable)")
	f.StringVarP(&parserName, "parser", "p", "", "parser backend: html5, tokenizer, or strict")
	f.BoolVar(&matchAttrs, "kw-attrs", false, "match keywords against attribute values as well as text")
	f.BoolVar(&sanitizeFlag, "sanitize", false, "sanitize the output with a UGC policy")
	f.BoolVar(&watchFlag, "watch", false, "re-run whenever the input file changes (needs file input and -O)")

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging to stderr")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ensureServices builds the default wiring unless a test injected its own.
func ensureServices() {
	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			logger.Warn("config unavailable: %v", err)
		} else {
			configStore = store
		}
	}
	if detagService == nil {
		defaultParser := parsers.DefaultParser
		if configStore != nil {
			if p := configStore.GetString("parser"); p != "" {
				defaultParser = p
			}
		}
		detagService = services.NewDetagService(
			parsers.NewDefaultRegistry(),
			postprocessors.NewDefaultRegistry(),
			defaultParser,
		)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)
	ensureServices()

	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	}

	if watchFlag {
		return runWatch(cmd, inputPath, req)
	}
	return runOnce(cmd, inputPath, req)
}

// buildRequest assembles the service request from flags and config.
func buildRequest(cmd *cobra.Command) (driving.Request, error) {
	keywordRules, err := parseKeywordSpecs(keywordSpecs)
	if err != nil {
		return driving.Request{}, err
	}

	deletes := deleteTags
	sanitize := sanitizeFlag
	if configStore != nil {
		deletes = append(configStore.GetStringSlice("delete"), deletes...)
		if !cmd.Flags().Changed("sanitize") && configStore.GetBool("sanitize") {
			sanitize = true
		}
	}

	var post []string
	if sanitize {
		post = append(post, "sanitize")
	}

	return driving.Request{
		Parser:          parserName,
		DeleteTags:      deletes,
		KeywordRules:    keywordRules,
		Selectors:       selectors,
		MatchAttributes: matchAttrs,
		PostProcessors:  post,
	}, nil
}

// parseKeywordSpecs splits each "tag keyword" spec at the first space.
// The keyword may itself contain spaces and may be empty.
func parseKeywordSpecs(specs []string) ([]domain.KeywordRule, error) {
	rules := make([]domain.KeywordRule, 0, len(specs))
	for _, spec := range specs {
		tag, keyword, _ := strings.Cut(spec, " ")
		if strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("kw-delete %q has no tag name: %w", spec, domain.ErrInvalidRule)
		}
		rules = append(rules, domain.KeywordRule{Tag: tag, Keyword: keyword})
	}
	return rules, nil
}

// runOnce executes one pass of the pipeline. The output sink is touched
// only after the whole pipeline has succeeded.
func runOnce(cmd *cobra.Command, inputPath string, req driving.Request) error {
	if inputPath == "" {
		req.Input = cmd.InOrStdin()
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		req.Input = f
	}

	out, err := detagService.Detag(cmd.Context(), req)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
