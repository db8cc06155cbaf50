// Package document is the contract-document collaborator. Rendering happens
// elsewhere; the core only needs a stable reference token for the draft and
// a finalize step once all signatures land.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "trustlend-backend/internal/domain/contract"
)

const (
	draftSuffix = "-unsigned.pdf"
	finalSuffix = "-signed.pdf"
)

type Service struct{}

func NewService() *Service { return &Service{} }

// CreateDraft names the unsigned document artifact for a new contract.
func (s *Service) CreateDraft(ctx context.Context, c *domain.Contract) (string, error) {
	dateStr := time.Now().UTC().Format("2006-01-02")
	return fmt.Sprintf("Contract-%s-%s%s", dateStr, c.ContractID, draftSuffix), nil
}

// Finalize converts the draft reference into the signed variant.
func (s *Service) Finalize(ctx context.Context, ref string) (string, error) {
	if !strings.HasSuffix(ref, draftSuffix) {
		return "", fmt.Errorf("document %q is not a draft", ref)
	}
	return strings.TrimSuffix(ref, draftSuffix) + finalSuffix, nil
}
