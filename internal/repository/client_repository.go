package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lightechllc/authcore/internal/models"
)

// ClientRepository provides database access to registered OAuth2 clients.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindByClientID returns a client by its public identifier.
func (r *ClientRepository) FindByClientID(ctx context.Context, clientID string) (*models.Client, error) {
	const query = `SELECT client_id, client_secret, name, client_type, grant_types, allowed_scopes, active, created_at, updated_at FROM oauth_clients WHERE client_id = $1 LIMIT 1`
	var client models.Client
	if err := r.db.GetContext(ctx, &client, query, clientID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find client by client_id: %w", err)
	}
	return &client, nil
}

// Create inserts a new client registration.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	now := time.Now().UTC()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	const query = `INSERT INTO oauth_clients (client_id, client_secret, name, client_type, grant_types, allowed_scopes, active, created_at, updated_at) VALUES (:client_id, :client_secret, :name, :client_type, :grant_types, :allowed_scopes, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}
