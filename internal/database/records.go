package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"acadforms/internal/forms"
	"acadforms/internal/records"
)

// SaveRecord persists a freshly built document record for the given user and
// writes the matching audit entry in the same transaction.
func (s *service) SaveRecord(rec *records.Record, userID int) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("failed to encode record data: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO document_records (id, user_id, template_id, template_name, data,
			status, applicant, created_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err = tx.Exec(
		query,
		rec.ID,
		userID,
		rec.TemplateID,
		rec.TemplateName,
		data,
		string(rec.Status),
		rec.Applicant,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	auditQuery := `
		INSERT INTO document_audit_log (record_id, user_id, action, details, created_at)
		VALUES ($1, $2, 'record_created', $3, NOW())`

	auditDetails := fmt.Sprintf(`{"template_id": %q, "applicant": %q}`, rec.TemplateID, rec.Applicant)
	if _, err = tx.Exec(auditQuery, rec.ID, userID, auditDetails); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRecord retrieves one of the user's records by ID.
func (s *service) GetRecord(recordID string, userID int) (*records.Record, error) {
	query := `
		SELECT id, template_id, template_name, data, status, applicant, created_on
		FROM document_records
		WHERE id = $1 AND user_id = $2`

	return scanRecord(s.db.QueryRow(query, recordID, userID))
}

// ListRecords returns all of the user's records, newest first.
func (s *service) ListRecords(userID int) ([]records.Record, error) {
	query := `
		SELECT id, template_id, template_name, data, status, applicant, created_on
		FROM document_records
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var out []records.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// UpdateRecordStatus moves a record through its workflow states.
func (s *service) UpdateRecordStatus(recordID string, userID int, status records.Status) error {
	query := `
		UPDATE document_records
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3`

	result, err := s.db.Exec(query, string(status), recordID, userID)
	if err != nil {
		return fmt.Errorf("failed to update record status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("record not found")
	}

	auditQuery := `
		INSERT INTO document_audit_log (record_id, user_id, action, details, created_at)
		VALUES ($1, $2, 'status_changed', $3, NOW())`

	// Best-effort: the status change itself already committed.
	auditDetails := fmt.Sprintf(`{"status": %q}`, string(status))
	if _, err := s.db.Exec(auditQuery, recordID, userID, auditDetails); err != nil {
		log.Printf("failed to write audit entry for record %s: %v", recordID, err)
	}

	return nil
}

// RecordExport logs that a record was exported and where the artifact landed
// on the drive.
func (s *service) RecordExport(recordID string, userID int, format, driveItemID string) error {
	auditQuery := `
		INSERT INTO document_audit_log (record_id, user_id, action, details, created_at)
		VALUES ($1, $2, 'record_exported', $3, NOW())`

	auditDetails := fmt.Sprintf(`{"format": %q, "drive_item_id": %q}`, format, driveItemID)
	if _, err := s.db.Exec(auditQuery, recordID, userID, auditDetails); err != nil {
		return fmt.Errorf("failed to log export: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*records.Record, error) {
	var rec records.Record
	var data []byte
	var status string

	err := row.Scan(
		&rec.ID, &rec.TemplateID, &rec.TemplateName, &data,
		&status, &rec.Applicant, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.Status = records.Status(status)
	rec.Data = forms.Values{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rec.Data); err != nil {
			return nil, fmt.Errorf("failed to decode record data: %w", err)
		}
	}
	return &rec, nil
}
