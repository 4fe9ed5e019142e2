package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/classify"
	"github.com/sells-group/prospect-cli/internal/contacts"
	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/ner"
	"github.com/sells-group/prospect-cli/internal/pipeline"
	"github.com/sells-group/prospect-cli/internal/resilience"
	"github.com/sells-group/prospect-cli/internal/store"
	"github.com/sells-group/prospect-cli/pkg/anthropic"
	"github.com/sells-group/prospect-cli/pkg/apollo"
	"github.com/sells-group/prospect-cli/pkg/emailcheck"
	"github.com/sells-group/prospect-cli/pkg/serp"
)

// pipelineEnv bundles the constructed collaborators for one command
// invocation.
type pipelineEnv struct {
	Pipeline *pipeline.Pipeline
	Store    store.Store
}

// Close releases the environment's resources.
func (e *pipelineEnv) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			zap.L().Warn("close store", zap.Error(err))
		}
	}
}

func newSerpClient() (serp.Client, error) {
	if err := cfg.Serp.Validate(); err != nil {
		return nil, err
	}
	return serp.NewClient(cfg.Serp.Key, serp.WithBaseURL(cfg.Serp.BaseURL)), nil
}

// newJudge returns nil when no Anthropic key is configured; discovery
// then accepts every structurally plausible candidate.
func newJudge() classify.CompanyJudge {
	if cfg.Anthropic.Key == "" {
		zap.L().Info("anthropic key not set, AI company filter disabled")
		return nil
	}
	return classify.NewClaude(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
}

func newExpander() (*contacts.SynonymExpander, error) {
	expander := contacts.NewSynonymExpander()
	if cfg.Contacts.SynonymsFile == "" {
		return expander, nil
	}

	overrides, err := contacts.LoadSynonyms(cfg.Contacts.SynonymsFile)
	if err != nil {
		return nil, err
	}
	expander.Merge(overrides)
	return expander, nil
}

func newApolloClient() apollo.Client {
	if cfg.Apollo.Key == "" {
		zap.L().Info("apollo key not set, contact enrichment disabled")
		return nil
	}
	return apollo.NewClient(cfg.Apollo.Key, apollo.WithBaseURL(cfg.Apollo.BaseURL))
}

func newEmailChecker() emailcheck.Client {
	if cfg.EmailCheck.Key == "" {
		zap.L().Info("emailcheck key not set, email verification disabled")
		return nil
	}
	return emailcheck.NewClient(cfg.EmailCheck.Key, emailcheck.WithBaseURL(cfg.EmailCheck.BaseURL))
}

// initPipeline builds the full pipeline from config. withStore controls
// whether runs are persisted.
func initPipeline(ctx context.Context, withStore bool) (*pipelineEnv, error) {
	serpClient, err := newSerpClient()
	if err != nil {
		return nil, err
	}

	expander, err := newExpander()
	if err != nil {
		return nil, err
	}

	var s store.Store
	if withStore {
		s, err = initStore(ctx)
		if err != nil {
			return nil, err
		}
	}

	p := &pipeline.Pipeline{
		Discovery:   discovery.NewOrchestrator(serpClient, newJudge(), &cfg.Discovery),
		Resolver:    contacts.NewResolver(serpClient, ner.NewProse(), expander),
		Apollo:      newApolloClient(),
		Checker:     newEmailChecker(),
		Store:       s,
		Retry:       resilience.DefaultPolicy(),
		RevealPhone: cfg.Apollo.RevealPhone,
	}

	return &pipelineEnv{Pipeline: p, Store: s}, nil
}
