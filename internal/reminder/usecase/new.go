package usecase

import (
	"elder-advice-agent/internal/audit"
	"elder-advice-agent/internal/reminder/repository"
	pkgLog "elder-advice-agent/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	audit *audit.Log
}

// New creates a new reminder UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, auditLog *audit.Log) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		audit: auditLog,
	}
}
