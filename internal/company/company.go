// Package company classifies employers as software or hardware focused by
// fusing several independent keyword signals into a single weighted decision.
package company

import (
	"fmt"
	"strings"
	"sync"
)

// Type is the classification outcome for an employer.
type Type string

const (
	Software Type = "software"
	Hardware Type = "hardware"
	Both     Type = "both"
	Unknown  Type = "unknown"
)

// Classification sources.
const (
	SourceAuto   = "auto"
	SourceManual = "manual"
)

// Signal is one independently computed piece of evidence. Detail carries the
// matched keywords and counts so the final decision stays explainable.
type Signal struct {
	Type   Type              `json:"type"`
	Score  float64           `json:"score"`
	Detail map[string]string `json:"detail,omitempty"`
}

// Classification is the fused decision for one employer.
type Classification struct {
	Type       Type              `json:"type"`
	Confidence float64           `json:"confidence"`
	Signals    map[string]Signal `json:"signals,omitempty"`
	Source     string            `json:"source"`
}

// NewClassification builds a Classification and enforces the confidence
// invariant. A value outside [0,1] means the fusion math is broken, so this
// panics instead of degrading.
func NewClassification(t Type, confidence float64, signals map[string]Signal, source string) *Classification {
	if confidence < 0 || confidence > 1 {
		panic(fmt.Sprintf("company: confidence %v out of range [0,1]", confidence))
	}
	return &Classification{
		Type:       t,
		Confidence: confidence,
		Signals:    signals,
		Source:     source,
	}
}

// Store is the persistence consumed by the classifier. Implementations must
// treat UpsertAuto as an idempotent upsert keyed by (company name, source).
type Store interface {
	// ManualOverride returns a human-supplied classification for the exact
	// company name, or nil when none exists.
	ManualOverride(companyName string) (*Classification, error)
	// UpsertAuto persists an automatic classification.
	UpsertAuto(companyName string, c *Classification) error
}

// Normalize returns the cache and persistence key for a company name.
func Normalize(companyName string) string {
	return strings.ToLower(strings.TrimSpace(companyName))
}

// Cache holds classifications for the lifetime of one process or batch run.
// It is safe for concurrent use; concurrent writes for the same company are
// idempotent since fusion is deterministic for identical inputs.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Classification
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Classification)}
}

// Get returns the cached classification for a normalized company name.
func (c *Cache) Get(key string) *Classification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

func (c *Cache) Put(key string, cl *Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cl
}

// Clear drops all entries. Meant for tests and long-lived batch jobs.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Classification)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
