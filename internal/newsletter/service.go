package newsletter

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
)

// Service captures newsletter signups. Signups are append-only; the
// storefront never reads them back.
type Service interface {
	Subscribe(ctx context.Context, email string) error
}

type ServiceParams struct {
	FilePath string
}

type service struct {
	filePath string
	mu       sync.Mutex
}

func NewService(params ServiceParams) (Service, error) {
	if strings.TrimSpace(params.FilePath) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "newsletter file path required")
	}
	return &service{filePath: params.FilePath}, nil
}

type signupRecord struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscribe appends one JSONL record. Duplicates are accepted; the
// mailing tool dedupes on import.
func (s *service) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}

	line, err := json.Marshal(signupRecord{Email: email, CreatedAt: time.Now().UTC()})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode signup")
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open signup file")
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write signup")
	}
	return nil
}
