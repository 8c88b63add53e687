// Package survey manages field survey records and their persistence.
package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record represents one inspected site segment. Photos accumulate on it over
// time via the upload protocol; everything else is descriptive payload.
type Record struct {
	ID          string  `json:"id"`
	StartPoint  string  `json:"start_point"`
	EndPoint    string  `json:"end_point"`
	Orientation string  `json:"orientation"`
	Distance    float64 `json:"distance"`
	TopDistance string  `json:"top_distance"`
	Category    string  `json:"category"`
	Details     Details `json:"details"`

	// PhotoURLs is append-only; order reflects upload confirmation order.
	PhotoURLs []string `json:"photo_urls"`
	// AwaitingPhotoCount is an advisory hint of photos still expected. It is
	// decremented (floored at zero) on each confirmed upload but never gates
	// confirmation.
	AwaitingPhotoCount int32      `json:"awaiting_photo_count"`
	Remarks            *string    `json:"remarks,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
}

// ChangeOfArea describes a cross-section change measurement.
type ChangeOfArea struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ChangeWidth  float64 `json:"change_width"`
	ChangeHeight float64 `json:"change_height"`
}

// Details holds category-specific measurements. All fields are optional.
type Details struct {
	Diameter          *int          `json:"diameter,omitempty"`
	Length            *float64      `json:"length,omitempty"`
	Width             *float64      `json:"width,omitempty"`
	Protrusion        *int          `json:"protrusion,omitempty"`
	SiltationDepth    *int          `json:"siltation_depth,omitempty"`
	CrossingPipeCount *int          `json:"crossing_pipe_count,omitempty"`
	ChangeOfArea      *ChangeOfArea `json:"change_of_area,omitempty"`
	Issues            []string      `json:"issues,omitempty"`
}

// ErrNotFound is returned when a survey record does not exist.
var ErrNotFound = errors.New("survey record not found")

// ErrAlreadyExists is returned when a record id is already taken.
var ErrAlreadyExists = errors.New("survey record already exists")

const recordColumns = `id, start_point, end_point, orientation, distance, top_distance,
	 category, details, photo_urls, awaiting_photo_count, remarks, created_at`

// Repository handles all survey record database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new record with a client-supplied id and returns that id.
func (r *Repository) Create(ctx context.Context, rec *Record) (string, error) {
	var id string
	err := r.db.QueryRow(ctx,
		`INSERT INTO survey_records (
		     id, start_point, end_point, orientation, distance, top_distance,
		     category, details, awaiting_photo_count, remarks
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		rec.ID, rec.StartPoint, rec.EndPoint, rec.Orientation, rec.Distance,
		rec.TopDistance, rec.Category, rec.Details, rec.AwaitingPhotoCount, rec.Remarks,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("create survey record: %w", err)
	}
	return id, nil
}

// GetByID fetches a record by its id.
func (r *Repository) GetByID(ctx context.Context, id string) (*Record, error) {
	rec := &Record{}
	err := r.db.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM survey_records WHERE id = $1`, id,
	).Scan(
		&rec.ID, &rec.StartPoint, &rec.EndPoint, &rec.Orientation, &rec.Distance,
		&rec.TopDistance, &rec.Category, &rec.Details, &rec.PhotoURLs,
		&rec.AwaitingPhotoCount, &rec.Remarks, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get survey record: %w", err)
	}
	return rec, nil
}

// Exists reports whether a record with the given id is present.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM survey_records WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check survey record: %w", err)
	}
	return exists, nil
}

// AppendPhoto records a confirmed photo reference: the URL is appended to
// photo_urls and awaiting_photo_count is decremented, floored at zero, in one
// atomic statement. Concurrent appends for the same record serialize on the
// row without any application-level lock.
func (r *Repository) AppendPhoto(ctx context.Context, id, photoURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE survey_records
		 SET photo_urls = array_append(photo_urls, $2),
		     awaiting_photo_count = GREATEST(awaiting_photo_count - 1, 0)
		 WHERE id = $1`,
		id, photoURL,
	)
	if err != nil {
		return fmt.Errorf("append photo url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Filters narrows List results. Zero values mean "no constraint".
type Filters struct {
	Category    string
	StartPoint  string
	EndPoint    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int64
	Offset      int64
}

// List returns records matching the filters, newest first.
func (r *Repository) List(ctx context.Context, f Filters) ([]*Record, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list survey records: %w", err)
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(
			&rec.ID, &rec.StartPoint, &rec.EndPoint, &rec.Orientation, &rec.Distance,
			&rec.TopDistance, &rec.Category, &rec.Details, &rec.PhotoURLs,
			&rec.AwaitingPhotoCount, &rec.Remarks, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan survey record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate survey records: %w", err)
	}
	return records, nil
}

// buildListQuery assembles the filtered SELECT with positional parameters.
func buildListQuery(f Filters) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + recordColumns + ` FROM survey_records`)

	conds := []string{}
	args := []any{}
	addCond := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.Category != "" {
		addCond("category = $%d", f.Category)
	}
	if f.StartPoint != "" {
		addCond("start_point = $%d", f.StartPoint)
	}
	if f.EndPoint != "" {
		addCond("end_point = $%d", f.EndPoint)
	}
	if f.CreatedFrom != nil {
		addCond("created_at >= $%d", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		addCond("created_at <= $%d", *f.CreatedTo)
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY created_at DESC")

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))

	if f.Offset > 0 {
		args = append(args, f.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return sb.String(), args
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
