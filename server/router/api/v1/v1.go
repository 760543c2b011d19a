// Package v1 exposes the JSON API consumed by clients.
package v1

import (
	"math/rand"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/verdantlabs/greensense/internal/profile"
	"github.com/verdantlabs/greensense/plugin/classifier"
	"github.com/verdantlabs/greensense/plugin/scoring"
	"github.com/verdantlabs/greensense/plugin/suggest"
	"github.com/verdantlabs/greensense/store"
)

// APIV1Service wires the analytics pipeline to the HTTP surface.
type APIV1Service struct {
	Profile    *profile.Profile
	Store      *store.Store
	Classifier *classifier.Classifier
	Scorer     *scoring.Scorer
	Engine     *suggest.Engine

	// rnd feeds suggestion generation. *rand.Rand is not safe for
	// concurrent use, so access goes through rndMu.
	rnd   *rand.Rand
	rndMu sync.Mutex
}

// NewAPIV1Service creates the API service with a time-seeded randomness
// source.
func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile:    profile,
		Store:      store,
		Classifier: classifier.NewClassifier(),
		Scorer:     scoring.NewScorer(),
		Engine:     suggest.NewEngine(),
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedRand replaces the randomness source, making suggestion output
// reproducible. Intended for tests.
func (s *APIV1Service) SeedRand(seed int64) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	s.rnd = rand.New(rand.NewSource(seed))
}

// RegisterRoutes attaches all v1 handlers to the echo group.
func (s *APIV1Service) RegisterRoutes(g *echo.Group) {
	g.POST("/habits", s.CreateHabit)
	g.GET("/habits", s.ListHabits)
	g.GET("/score", s.GetScore)
	g.GET("/stats", s.GetStats)
	g.GET("/hints", s.GetHints)
	g.GET("/suggestions", s.GetSuggestions)
	g.GET("/suggestions/explain", s.ExplainSuggestion)
	g.GET("/agriculture/tips", s.GetAgricultureTips)
	g.POST("/agriculture/recommend", s.RecommendCrop)
}
