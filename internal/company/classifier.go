package company

import (
	"go.uber.org/zap"
)

// lowConfidenceThreshold forces the outcome to unknown when the winning
// weighted score stays below it.
const lowConfidenceThreshold = 0.3

// fusionOrder breaks ties between equal weighted scores. It mirrors the
// curated-list check order.
var fusionOrder = []Type{Hardware, Software, Both, Unknown}

// Request carries all evidence available for one classification call.
type Request struct {
	Company        string
	Title          string
	Description    string
	DomainKeywords []string
}

// Classifier fuses the four keyword signals into a Classification. The cache
// and store are injected: the cache lives for one process or batch run, the
// store is optional and any fault in it degrades the classifier to in-memory
// operation instead of failing the call.
type Classifier struct {
	lists  *Lists
	store  Store
	cache  *Cache
	logger *zap.Logger
}

func NewClassifier(lists *Lists, store Store, cache *Cache, logger *zap.Logger) *Classifier {
	if lists == nil {
		lists = &Lists{}
	}
	if cache == nil {
		cache = NewCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		lists:  lists,
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Classify returns the classification for the employer in the request.
// Manual overrides from the store win over everything and bypass the cache.
func (c *Classifier) Classify(req Request) *Classification {
	if c.store != nil {
		override, err := c.store.ManualOverride(req.Company)
		if err != nil {
			c.logger.Warn("manual override lookup failed, continuing without it",
				zap.String("company", req.Company),
				zap.Error(err),
			)
		}
		if override != nil {
			override.Source = SourceManual
			return override
		}
	}

	key := Normalize(req.Company)
	if cached := c.cache.Get(key); cached != nil {
		return cached
	}

	signals := map[string]Signal{
		SignalNameKeyword:   nameKeywordSignal(req.Company, c.lists.Keywords),
		SignalCuratedList:   curatedListSignal(req.Company, c.lists),
		SignalDomainKeyword: domainKeywordSignal(req.DomainKeywords),
		SignalJobContent:    jobContentSignal(req.Title, req.Description),
	}

	weighted := make(map[Type]float64)
	voted := make(map[Type]float64)
	for name, signal := range signals {
		weight := signalWeights[name]
		weighted[signal.Type] += signal.Score * weight
		if signal.Type != Unknown {
			voted[signal.Type] += weight
		}
	}

	winner := Unknown
	best := 0.0
	for _, t := range fusionOrder {
		if weighted[t] > best {
			winner = t
			best = weighted[t]
		}
	}

	var result *Classification
	if winner == Unknown || best < lowConfidenceThreshold {
		// Low-confidence override: too little evidence to commit to a type.
		result = NewClassification(Unknown, best, signals, SourceAuto)
	} else {
		// Supporting evidence may only raise confidence: the weight-normalized
		// sum is floored at the strongest signal voting for the winner, so a
		// weak co-voting signal never undercuts a curated-list hit.
		confidence := best / voted[winner]
		for _, signal := range signals {
			if signal.Type == winner && signal.Score > confidence {
				confidence = signal.Score
			}
		}
		result = NewClassification(winner, confidence, signals, SourceAuto)
	}

	c.cache.Put(key, result)

	if c.store != nil {
		if err := c.store.UpsertAuto(key, result); err != nil {
			c.logger.Warn("skipping classification write",
				zap.String("company", req.Company),
				zap.Error(err),
			)
		}
	}

	c.logger.Debug("classified company",
		zap.String("company", req.Company),
		zap.String("type", string(result.Type)),
		zap.Float64("confidence", result.Confidence),
	)

	return result
}

// Cache exposes the injected cache, mainly so batch callers can clear it.
func (c *Classifier) CacheRef() *Cache {
	return c.cache
}
