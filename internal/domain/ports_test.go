package domain_test

import (
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/config"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/gitinfo"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/history"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/scanner"
	"github.com/neuronexus/schemacheck/internal/domain"
)

// Adapters must keep satisfying the ports they are wired to.
var (
	_ domain.SchemaDiscoverer = (*scanner.FileScanner)(nil)
	_ domain.ConfigLoader     = (*config.YAMLLoader)(nil)
	_ domain.RunHistory       = (*history.FileHistory)(nil)
	_ domain.GitInfo          = (*gitinfo.GitInfoAdapter)(nil)
)
