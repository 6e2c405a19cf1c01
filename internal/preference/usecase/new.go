package usecase

import (
	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference"
	"calendar-pro/internal/preference/repository"
	pkgLog "calendar-pro/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier notify.Notifier
}

var _ preference.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, repo repository.Repository, notifier notify.Notifier) *implUseCase {
	return &implUseCase{l: l, repo: repo, notifier: notifier}
}
