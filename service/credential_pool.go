package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/krishnavamsip/pdf-assistant/types"
)

// Credential is one API key tracked for load balancing. Counters are
// advisory and only ever mutated through RecordOutcome.
type Credential struct {
	ID  string
	Key string

	requests int64
	errors   int64
	lastUsed time.Time
}

// CredentialPool picks the least-loaded credential per request. Errors are
// weighted 10x so a failing key is routed around quickly. The pipelines run
// sequentially, but the HTTP server shares one pool across requests, so
// access is guarded by a mutex.
type CredentialPool struct {
	mu    sync.Mutex
	creds []*Credential
}

func NewCredentialPool(keys []string) *CredentialPool {
	pool := &CredentialPool{}
	for i, key := range keys {
		pool.creds = append(pool.creds, &Credential{
			ID:  fmt.Sprintf("key_%d", i+1),
			Key: key,
		})
	}
	return pool
}

// Select returns the credential with the lowest usage score
// (requests + errors*10), ties going to the earliest slot.
func (p *CredentialPool) Select() (*Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.creds) == 0 {
		return nil, types.ErrNoCredentials
	}

	best := p.creds[0]
	for _, cred := range p.creds[1:] {
		if cred.score() < best.score() {
			best = cred
		}
	}
	return best, nil
}

func (c *Credential) score() int64 {
	return c.requests + c.errors*10
}

// RecordOutcome bumps the counters for a credential after an attempt.
// Unknown ids are ignored.
func (p *CredentialPool) RecordOutcome(id string, success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, cred := range p.creds {
		if cred.ID != id {
			continue
		}
		cred.requests++
		cred.lastUsed = time.Now()
		if !success {
			cred.errors++
		}
		return
	}
}

// Credentials returns the pool contents for client construction.
func (p *CredentialPool) Credentials() []*Credential {
	return p.creds
}

// Stats builds the read-only usage view for every credential.
func (p *CredentialPool) Stats() []types.UsageStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make([]types.UsageStats, 0, len(p.creds))
	for _, cred := range p.creds {
		requests := cred.requests
		if requests < 1 {
			requests = 1
		}
		stats = append(stats, types.UsageStats{
			Credential:  cred.ID,
			Requests:    cred.requests,
			Errors:      cred.errors,
			SuccessRate: float64(cred.requests-cred.errors) / float64(requests) * 100,
		})
	}
	return stats
}
