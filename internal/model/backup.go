package model

// Backup is the export file layout. It stays compatible with backups
// written by the browser version.
type Backup struct {
	Events     []Event `json:"events"`
	Tasks      []Task  `json:"tasks"`
	ExportDate string  `json:"exportDate"`
}
