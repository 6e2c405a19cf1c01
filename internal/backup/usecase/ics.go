package usecase

import (
	"context"
	"fmt"

	"calendar-pro/internal/backup"
	"calendar-pro/internal/notify"
)

const icsContentType = "text/calendar; charset=utf-8"

// ExportICS returns every event as an iCalendar file.
func (uc *implUseCase) ExportICS(ctx context.Context) (backup.File, error) {
	now := uc.repo.Now()
	data, skipped := backup.EncodeICS(uc.repo.Events(), uc.dateMath.Location(), now)
	if skipped > 0 {
		uc.l.Warnf(ctx, "uc.ExportICS: skipped %d event(s) with an invalid date", skipped)
	}

	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgExported)
	return backup.File{
		Filename:    fmt.Sprintf("calendar_%s.ics", uc.dateMath.Today(now)),
		ContentType: icsContentType,
		Data:        data,
	}, nil
}

// ImportICS appends the events of an iCalendar file.
func (uc *implUseCase) ImportICS(ctx context.Context, input backup.ImportInput) (backup.ImportICSOutput, error) {
	events, skipped, err := backup.DecodeICS(input.Data, uc.dateMath.Location())
	if err != nil {
		uc.l.Warnf(ctx, "uc.ImportICS DecodeICS: %v", err)
		uc.notifier.Push(ctx, notify.KindError, notify.MsgImportFailed)
		return backup.ImportICSOutput{}, err
	}

	added := uc.repo.AppendEvents(ctx, events)

	uc.l.Infof(ctx, "uc.ImportICS: added=%d skipped=%d", len(added), skipped)
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgImported)
	return backup.ImportICSOutput{Added: len(added), Skipped: skipped}, nil
}
