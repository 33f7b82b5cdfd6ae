package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/google/uuid"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
	"github.com/open-technology-foundation/deltags/internal/filter"
	"github.com/open-technology-foundation/deltags/internal/logger"
)

// Ensure DetagService implements the interface.
var _ driving.DetagService = (*DetagService)(nil)

// DetagService filters HTML documents through a selected parser backend.
type DetagService struct {
	parsers       driven.ParserRegistry
	processors    driven.PostProcessorRegistry
	defaultParser string
}

// NewDetagService creates a new detag service. defaultParser is used when
// a request names no backend.
func NewDetagService(
	parsers driven.ParserRegistry,
	processors driven.PostProcessorRegistry,
	defaultParser string,
) *DetagService {
	return &DetagService{
		parsers:       parsers,
		processors:    processors,
		defaultParser: defaultParser,
	}
}

// Detag runs the full pipeline. Every rule, selector, and processor name is
// validated before the input is read, so a bad specification aborts the
// whole operation with nothing consumed and nothing emitted.
func (s *DetagService) Detag(ctx context.Context, req driving.Request) (string, error) {
	if req.Input == nil {
		return "", fmt.Errorf("no input source: %w", domain.ErrInvalidInput)
	}

	runID := uuid.New().String()
	logger.Section("Detag")
	logger.Debug("Run: %s", runID)

	rules, err := buildRules(req)
	if err != nil {
		return "", err
	}

	selectors, err := compileSelectors(req.Selectors)
	if err != nil {
		return "", err
	}

	pipeline, err := s.processors.Pipeline(req.PostProcessors...)
	if err != nil {
		return "", err
	}

	name := req.Parser
	if name == "" {
		name = s.defaultParser
	}
	parser, err := s.parsers.Get(name)
	if err != nil {
		return "", err
	}
	logger.Debug("Parser: %s (%s)", parser.Name(), parser.Traits())

	root, err := parser.Parse(ctx, req.Input)
	if err != nil {
		return "", err
	}

	filter.Strip(root, rules)

	if len(selectors) > 0 {
		doc := goquery.NewDocumentFromNode(root)
		for i, sel := range selectors {
			matched := doc.FindMatcher(sel)
			logger.Debug("Selector %q removed %d node(s)", req.Selectors[i], matched.Length())
			matched.Remove()
		}
	}

	out, err := filter.RenderString(root)
	if err != nil {
		return "", err
	}
	logger.Debug("Serialized %d bytes", len(out))

	return pipeline.Process(ctx, out)
}

// buildRules merges the request's tag groups and keyword rules into one
// rule set. The set is complete before filtering starts and is not
// modified afterwards.
func buildRules(req driving.Request) (*domain.RuleSet, error) {
	rules := domain.NewRuleSet()
	for _, group := range req.DeleteTags {
		rules.AddTagNames(strings.Split(group, ","))
	}
	for _, kr := range req.KeywordRules {
		if err := rules.AddKeywordRule(kr.Tag, kr.Keyword); err != nil {
			return nil, err
		}
	}
	rules.SetMatchAttributes(req.MatchAttributes)
	return rules, nil
}

// compileSelectors compiles every CSS selector up front.
func compileSelectors(exprs []string) ([]cascadia.Selector, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	selectors := make([]cascadia.Selector, 0, len(exprs))
	for _, expr := range exprs {
		sel, err := cascadia.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSelector, expr, err)
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}
