package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"calendar-pro/internal/backup"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
)

const jsonContentType = "application/json"

// importPayload keeps absent and null keys apart from empty lists.
type importPayload struct {
	Events *[]model.Event `json:"events"`
	Tasks  *[]model.Task  `json:"tasks"`
}

// Export returns the backup JSON with a dated filename.
func (uc *implUseCase) Export(ctx context.Context) (backup.File, error) {
	now := uc.repo.Now()
	b := model.Backup{
		Events:     uc.repo.Events(),
		Tasks:      uc.repo.Tasks(),
		ExportDate: now.UTC().Format(model.TimestampLayout),
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export json.MarshalIndent: %v", err)
		return backup.File{}, err
	}

	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgExported)
	return backup.File{
		Filename:    fmt.Sprintf("calendar_backup_%s.json", uc.dateMath.Today(now)),
		ContentType: jsonContentType,
		Data:        data,
	}, nil
}

// Import replaces each collection present in the payload. Nothing changes
// when the payload is malformed.
func (uc *implUseCase) Import(ctx context.Context, input backup.ImportInput) (backup.ImportOutput, error) {
	payload, err := decodeBackup(input.Data)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Import decodeBackup: %v", err)
		uc.notifier.Push(ctx, notify.KindError, notify.MsgImportFailed)
		return backup.ImportOutput{}, err
	}

	uc.repo.Replace(ctx, payload.Events, payload.Tasks)

	var out backup.ImportOutput
	if payload.Events != nil {
		out.EventsReplaced = true
		out.Events = len(*payload.Events)
	}
	if payload.Tasks != nil {
		out.TasksReplaced = true
		out.Tasks = len(*payload.Tasks)
	}

	uc.l.Infof(ctx, "uc.Import: events=%d tasks=%d", out.Events, out.Tasks)
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgImported)
	return out, nil
}

func decodeBackup(data []byte) (importPayload, error) {
	var payload importPayload

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return payload, backup.ErrEmptyFile
	}
	if trimmed[0] != '{' {
		return payload, backup.ErrMalformedBackup
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", backup.ErrMalformedBackup, err)
	}
	return payload, nil
}
