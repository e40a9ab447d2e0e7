package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// ImportTaskRepository handles database operations for import tasks
type ImportTaskRepository struct {
	db *sql.DB
}

// NewImportTaskRepository creates a new import task repository
func NewImportTaskRepository(db *sql.DB) *ImportTaskRepository {
	return &ImportTaskRepository{db: db}
}

const importTaskColumns = `id, competition_id, season_id, max_matches, grid_size, status,
	progress_percent, total_matches, processed_matches, failed_matches,
	start_time, end_time, players_imported, error_message, created_by,
	created_at, updated_at`

// Create creates a new import task
func (r *ImportTaskRepository) Create(task *models.ImportTask) error {
	query := `
		INSERT INTO import_tasks (
			competition_id, season_id, max_matches, grid_size, status,
			progress_percent, total_matches, processed_matches, failed_matches,
			start_time, end_time, players_imported, error_message, created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		task.CompetitionID,
		task.SeasonID,
		task.MaxMatches,
		task.GridSize,
		task.Status,
		task.ProgressPercent,
		task.TotalMatches,
		task.ProcessedMatches,
		task.FailedMatches,
		task.StartTime,
		task.EndTime,
		task.PlayersImported,
		task.ErrorMessage,
		task.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create import task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = id
	return nil
}

// GetByID retrieves an import task by ID
func (r *ImportTaskRepository) GetByID(id int64) (*models.ImportTask, error) {
	query := `SELECT ` + importTaskColumns + ` FROM import_tasks WHERE id = ?`

	task, err := scanImportTask(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("import task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// List retrieves import tasks with optional filters, newest first
func (r *ImportTaskRepository) List(filter models.ImportFilter) ([]*models.ImportTask, error) {
	query := `SELECT ` + importTaskColumns + ` FROM import_tasks WHERE 1=1`

	args := []interface{}{}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list import tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.ImportTask{}
	for rows.Next() {
		task, err := scanImportTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// SetTotal records how many matches the task will process
func (r *ImportTaskRepository) SetTotal(id int64, totalMatches int) error {
	query := `
		UPDATE import_tasks
		SET total_matches = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, totalMatches, id); err != nil {
		return fmt.Errorf("failed to set task total: %w", err)
	}
	return nil
}

// UpdateProgress updates the progress of an import task
func (r *ImportTaskRepository) UpdateProgress(id int64, processedMatches int, failedMatches int, progressPercent int) error {
	query := `
		UPDATE import_tasks
		SET processed_matches = ?, failed_matches = ?, progress_percent = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query, processedMatches, failedMatches, progressPercent, id)
	if err != nil {
		return fmt.Errorf("failed to update task progress: %w", err)
	}

	return nil
}

// MarkAsRunning marks a task as running
func (r *ImportTaskRepository) MarkAsRunning(id int64) error {
	now := time.Now().Unix()
	query := `
		UPDATE import_tasks
		SET status = ?, start_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusRunning, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as running: %w", err)
	}

	return nil
}

// MarkAsCompleted marks a task as completed with the number of players imported
func (r *ImportTaskRepository) MarkAsCompleted(id int64, playersImported int) error {
	now := time.Now().Unix()
	query := `
		UPDATE import_tasks
		SET status = ?, end_time = ?, players_imported = ?,
			progress_percent = 100, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusCompleted, now, playersImported, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as completed: %w", err)
	}

	return nil
}

// MarkAsFailed marks a task as failed with an error message
func (r *ImportTaskRepository) MarkAsFailed(id int64, errorMessage string) error {
	now := time.Now().Unix()
	query := `
		UPDATE import_tasks
		SET status = ?, end_time = ?, error_message = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusFailed, now, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImportTask(row rowScanner) (*models.ImportTask, error) {
	task := &models.ImportTask{}
	err := row.Scan(
		&task.ID,
		&task.CompetitionID,
		&task.SeasonID,
		&task.MaxMatches,
		&task.GridSize,
		&task.Status,
		&task.ProgressPercent,
		&task.TotalMatches,
		&task.ProcessedMatches,
		&task.FailedMatches,
		&task.StartTime,
		&task.EndTime,
		&task.PlayersImported,
		&task.ErrorMessage,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}
