package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
)

// KeywordRuleInput pairs a tag name with a keyword for conditional removal.
type KeywordRuleInput struct {
	Tag     string `json:"tag" jsonschema:"tag name to remove when the keyword matches"`
	Keyword string `json:"keyword,omitempty" jsonschema:"case-sensitive substring to look for in the element's text content"`
}

// DetagInput is the input schema for the detag tool.
type DetagInput struct {
	HTML            string             `json:"html" jsonschema:"the HTML document or fragment to filter"`
	DeleteTags      []string           `json:"delete_tags,omitempty" jsonschema:"tag names to remove unconditionally (case-insensitive)"`
	KeywordRules    []KeywordRuleInput `json:"keyword_rules,omitempty" jsonschema:"tags to remove only when a keyword matches"`
	Selectors       []string           `json:"selectors,omitempty" jsonschema:"CSS selectors whose matches are removed"`
	Parser          string             `json:"parser,omitempty" jsonschema:"parser backend: html5, tokenizer or strict (default html5)"`
	MatchAttributes bool               `json:"match_attributes,omitempty" jsonschema:"also match keywords against attribute values"`
	Sanitize        bool               `json:"sanitize,omitempty" jsonschema:"run the bluemonday UGC sanitizer on the result"`
}

// DetagOutput is the output schema for the detag tool.
type DetagOutput struct {
	HTML string `json:"html"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detag",
		Description: "Remove comments, matching tags and their subtrees from HTML",
	}, s.handleDetag)
}

// handleDetag handles the detag tool invocation.
func (s *Server) handleDetag(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DetagInput,
) (*mcp.CallToolResult, DetagOutput, error) {
	req := driving.Request{
		Input:           strings.NewReader(input.HTML),
		Parser:          input.Parser,
		DeleteTags:      input.DeleteTags,
		Selectors:       input.Selectors,
		MatchAttributes: input.MatchAttributes,
	}

	for _, kr := range input.KeywordRules {
		req.KeywordRules = append(req.KeywordRules, domain.KeywordRule{
			Tag:     kr.Tag,
			Keyword: kr.Keyword,
		})
	}

	if input.Sanitize {
		req.PostProcessors = []string{"sanitize"}
	}

	out, err := s.ports.Detag.Detag(ctx, req)
	if err != nil {
		return nil, DetagOutput{}, err
	}

	return nil, DetagOutput{HTML: out}, nil
}
