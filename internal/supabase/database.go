package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

type DatabaseClient struct {
	db *sql.DB
}

var _ services.ContractStore = (*DatabaseClient)(nil)

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const contractColumns = `
	id, client_id, title, description, total_price, estimated_duration,
	work_status, signature_status, client_signed_at, all_steps_signed_at,
	archive_path, version, created_at, updated_at`

const stepColumns = `
	id, contract_id, position, name, description, price, duration, is_real_offer,
	provider_id, offer_id, status, client_signed_at, provider_signed_at,
	accepted_at, rejected_at, rejection_reason, completed_at, start_date, deadline,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanContract(row scanner) (models.Contract, error) {
	var c models.Contract
	err := row.Scan(
		&c.ID, &c.ClientID, &c.Title, &c.Description, &c.TotalPrice, &c.EstimatedDuration,
		&c.WorkStatus, &c.SignatureStatus, &c.ClientSignedAt, &c.AllStepsSignedAt,
		&c.ArchivePath, &c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func scanStep(row scanner) (models.ContractStep, error) {
	var s models.ContractStep
	err := row.Scan(
		&s.ID, &s.ContractID, &s.Position, &s.Name, &s.Description, &s.Price, &s.Duration, &s.IsRealOffer,
		&s.ProviderID, &s.OfferID, &s.Status, &s.ClientSignedAt, &s.ProviderSignedAt,
		&s.AcceptedAt, &s.RejectedAt, &s.RejectionReason, &s.CompletedAt, &s.StartDate, &s.Deadline,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (d *DatabaseClient) CreateContract(ctx context.Context, agg *models.ContractAggregate) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c := agg.Contract
	_, err = tx.ExecContext(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, c.ID, c.ClientID, c.Title, c.Description, c.TotalPrice, c.EstimatedDuration,
		c.WorkStatus, c.SignatureStatus, c.ClientSignedAt, c.AllStepsSignedAt,
		c.ArchivePath, c.Version, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", err)
	}

	for _, s := range agg.Steps {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO contract_steps (`+stepColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		`, s.ID, s.ContractID, s.Position, s.Name, s.Description, s.Price, s.Duration, s.IsRealOffer,
			s.ProviderID, s.OfferID, s.Status, s.ClientSignedAt, s.ProviderSignedAt,
			s.AcceptedAt, s.RejectedAt, s.RejectionReason, s.CompletedAt, s.StartDate, s.Deadline,
			s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert step %d: %w", s.Position, err)
		}
	}

	return tx.Commit()
}

func (d *DatabaseClient) GetContract(ctx context.Context, contractID uuid.UUID) (*models.ContractAggregate, error) {
	return loadAggregate(ctx, d.db, contractID, false)
}

// loadAggregate reads a contract and its steps. With lock set the contract
// row is locked until q's transaction ends.
func loadAggregate(ctx context.Context, q queryer, contractID uuid.UUID, lock bool) (*models.ContractAggregate, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	c, err := scanContract(q.QueryRowContext(ctx, query, contractID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	steps, err := loadSteps(ctx, q, []uuid.UUID{contractID})
	if err != nil {
		return nil, err
	}
	return &models.ContractAggregate{Contract: c, Steps: steps[contractID]}, nil
}

func loadSteps(ctx context.Context, q queryer, contractIDs []uuid.UUID) (map[uuid.UUID][]models.ContractStep, error) {
	out := make(map[uuid.UUID][]models.ContractStep, len(contractIDs))
	if len(contractIDs) == 0 {
		return out, nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+stepColumns+`
		FROM contract_steps
		WHERE contract_id = ANY($1::uuid[])
		ORDER BY contract_id, position
	`, uuidArray(contractIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		out[s.ContractID] = append(out[s.ContractID], s)
	}
	return out, rows.Err()
}

func (d *DatabaseClient) GetStepContractID(ctx context.Context, stepID uuid.UUID) (uuid.UUID, error) {
	var contractID uuid.UUID
	err := d.db.QueryRowContext(ctx, `
		SELECT contract_id FROM contract_steps WHERE id = $1
	`, stepID).Scan(&contractID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, services.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get step: %w", err)
	}
	return contractID, nil
}

// UpdateContract locks the contract row, applies fn and writes back the
// contract plus every step fn touched in the same transaction.
func (d *DatabaseClient) UpdateContract(ctx context.Context, contractID uuid.UUID, fn services.MutateFunc) (*models.ContractAggregate, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	agg, err := loadAggregate(ctx, tx, contractID, true)
	if err != nil {
		return nil, err
	}
	before := agg.Clone()

	changed, err := fn(agg)
	if err != nil {
		return nil, err
	}
	if !changed {
		return before, nil
	}

	if err := writeChangedSteps(ctx, tx, before.Steps, agg.Steps); err != nil {
		return nil, err
	}

	c := agg.Contract
	err = tx.QueryRowContext(ctx, `
		UPDATE contracts
		SET work_status = $1, signature_status = $2, client_signed_at = $3,
			all_steps_signed_at = $4, updated_at = $5, version = version + 1
		WHERE id = $6
		RETURNING version
	`, c.WorkStatus, c.SignatureStatus, c.ClientSignedAt, c.AllStepsSignedAt, c.UpdatedAt, c.ID,
	).Scan(&agg.Contract.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit contract update: %w", err)
	}
	return agg, nil
}

// changedSteps returns the steps of after whose UpdatedAt differs from the
// same step in before. Steps missing from before are included.
func changedSteps(before, after []models.ContractStep) []models.ContractStep {
	previous := make(map[uuid.UUID]time.Time, len(before))
	for _, s := range before {
		previous[s.ID] = s.UpdatedAt
	}
	var out []models.ContractStep
	for _, s := range after {
		if at, ok := previous[s.ID]; ok && at.Equal(s.UpdatedAt) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func writeChangedSteps(ctx context.Context, q queryer, before, after []models.ContractStep) error {
	for _, s := range changedSteps(before, after) {
		if err := updateStep(ctx, q, s); err != nil {
			return err
		}
	}
	return nil
}

func updateStep(ctx context.Context, q queryer, s models.ContractStep) error {
	_, err := q.ExecContext(ctx, `
		UPDATE contract_steps
		SET status = $1, client_signed_at = $2, provider_signed_at = $3,
			accepted_at = $4, rejected_at = $5, rejection_reason = $6,
			completed_at = $7, start_date = $8, deadline = $9, updated_at = $10
		WHERE id = $11 AND contract_id = $12
	`, s.Status, s.ClientSignedAt, s.ProviderSignedAt,
		s.AcceptedAt, s.RejectedAt, s.RejectionReason,
		s.CompletedAt, s.StartDate, s.Deadline, s.UpdatedAt,
		s.ID, s.ContractID)
	if err != nil {
		return fmt.Errorf("failed to update step %s: %w", s.ID, err)
	}
	return nil
}

func (d *DatabaseClient) ListContractsForUser(ctx context.Context, userID uuid.UUID) ([]models.ContractAggregate, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+contractColumns+`
		FROM contracts c
		WHERE c.client_id = $1
		   OR EXISTS (
			SELECT 1 FROM contract_steps s
			WHERE s.contract_id = c.id AND s.provider_id = $1
		   )
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	var ids []uuid.UUID
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	steps, err := loadSteps(ctx, d.db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.ContractAggregate, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, models.ContractAggregate{Contract: c, Steps: steps[c.ID]})
	}
	return out, nil
}

func (d *DatabaseClient) SetArchivePath(ctx context.Context, contractID uuid.UUID, path string) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE contracts
		SET archive_path = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2
	`, path, contractID)
	if err != nil {
		return fmt.Errorf("failed to set archive path: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (d *DatabaseClient) GetProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	out := make(map[uuid.UUID]models.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT id, COALESCE(display_name, ''), COALESCE(email, '')
		FROM profiles
		WHERE id = ANY($1::uuid[])
	`, uuidArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Email); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (d *DatabaseClient) GetOffers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Offer, error) {
	out := make(map[uuid.UUID]models.Offer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT id, provider_id, title, price
		FROM offers
		WHERE id = ANY($1::uuid[])
	`, uuidArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.ProviderID, &o.Title, &o.Price); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		out[o.ID] = o
	}
	return out, rows.Err()
}

// uuidArray deduplicates ids and encodes them as a Postgres text array.
func uuidArray(ids []uuid.UUID) any {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id.String())
	}
	return pq.Array(out)
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
