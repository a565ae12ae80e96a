// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package notegraph

import (
	"log/slog"

	"github.com/poiesic/notegraph/ai"
	"github.com/poiesic/notegraph/ai/openai"
	"github.com/poiesic/notegraph/graph"
	"github.com/poiesic/notegraph/graph/httpapi"
	"github.com/poiesic/notegraph/ingest"
	"github.com/poiesic/notegraph/source"
	"github.com/poiesic/notegraph/storage"
	"github.com/poiesic/notegraph/storage/badger"
)

// DefaultGraphURL is the graph service endpoint used when none is configured.
const DefaultGraphURL = "http://localhost:7700"

// Service wires the sync state store, embedding client, and graph client
// around a source connector.
type Service struct {
	backend  *badger.Backend
	states   storage.StateRepository
	source   source.Connector
	embedder ai.Embedder
	graph    graph.Client
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig    *ai.Config
	graphConfig httpapi.Config
}

// WithAIConfig sets the embedding client configuration.
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithGraphConfig sets the graph service configuration.
func WithGraphConfig(cfg httpapi.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.graphConfig = cfg
	}
}

// NewService opens the state store at filePath and wires the default clients.
func NewService(filePath string, src source.Connector, opts ...ServiceOption) (*Service, error) {
	if src == nil {
		return nil, ingest.ErrSourceRequired
	}

	// Apply options
	options := &serviceOptions{
		aiConfig:    ai.DefaultConfig(),
		graphConfig: httpapi.Config{BaseURL: DefaultGraphURL},
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create state repository
	states, err := badger.NewStateRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create embedding client with configured settings
	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		states.Close()
		backend.Close()
		return nil, err
	}

	// Create graph client
	graphClient, err := httpapi.NewClient(options.graphConfig)
	if err != nil {
		states.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:  backend,
		states:   states,
		source:   src,
		embedder: embedder,
		graph:    graphClient,
		logger:   slog.Default(),
	}, nil
}

func (s *Service) Close() error {
	if err := s.states.Close(); err != nil {
		s.logger.Error("error closing state repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Service) States() storage.StateRepository {
	return s.states
}

func (s *Service) Source() source.Connector {
	return s.source
}

// NewSync creates a sync orchestrator over the service's wired components.
// The caller owns the orchestrator and must Release it after use.
func (s *Service) NewSync(config *ingest.Config, opts ...ingest.Option) (*ingest.Orchestrator, error) {
	return ingest.NewOrchestrator(s.source, s.embedder, s.graph, s.states, config, opts...)
}
