package mcp

import (
	"context"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
)

// mockDetagService is a test double for the detag driving port.
type mockDetagService struct {
	output  string
	err     error
	lastReq driving.Request
}

func (m *mockDetagService) Detag(_ context.Context, req driving.Request) (string, error) {
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}
