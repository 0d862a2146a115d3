package resend

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid"

	"github.com/songminj/logtrack/utils"
)

var ErrNoRecipients = errors.New("enter at least one email address")

var (
	entropyOnce   sync.Once
	entropySource io.Reader
)

// monotonic entropy is not goroutine safe on its own
func entropy() io.Reader {
	entropyOnce.Do(func() {
		entropySource = &lockedReader{r: ulid.Monotonic(rand.Reader, 0)}
	})
	return entropySource
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// ParseEmails splits a comma separated recipient list and validates every
// address. Duplicates are dropped; all invalid addresses are reported together.
func ParseEmails(text string) ([]string, error) {
	var errs error
	emails := []string{}
	seen := map[string]bool{}

	for _, addr := range utils.SplitAndTrim(text, ",") {
		if err := utils.ValidateVar(addr, "email"); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid email address %q", addr))
			continue
		}
		if !seen[addr] {
			seen[addr] = true
			emails = append(emails, addr)
		}
	}

	if errs != nil {
		return nil, errs
	}
	if len(emails) == 0 {
		return nil, ErrNoRecipients
	}
	return emails, nil
}
