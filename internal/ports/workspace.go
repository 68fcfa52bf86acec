package ports

import "github.com/aalvaropc/kolovorot/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
