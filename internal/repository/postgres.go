package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"shopbot/internal/model"
)

// PostgresRepository handles database operations against the catalog tables
// (users, products, distribution_centers). It implements the chat service's
// ProductCatalog, StoreDirectory, and UserDirectory collaborators.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

const productColumns = `
	p.id, p.name, p.category, p.brand, p.department, p.retail_price,
	p.sku, p.distribution_center_id, dc.name AS distribution_name`

// distanceKM renders the haversine distance (km) from the user's
// coordinates, which are always bound as $1 (lat) and $2 (lng), rounded to
// two decimals.
func distanceKM(alias string) string {
	return fmt.Sprintf(`ROUND((6371 * acos(least(1.0,
		cos(radians($1)) * cos(radians(%[1]s.latitude)) *
		cos(radians(%[1]s.longitude) - radians($2)) +
		sin(radians($1)) * sin(radians(%[1]s.latitude)))))::numeric, 2)::float8`, alias)
}

// productFilterClauses translates a FilterSet into WHERE clauses over the
// products table (aliased p). Size, category, and product all match the
// product name by substring; the exact price operator means a ±$0.01 band.
func productFilterClauses(f *model.FilterSet, argIndex int) ([]string, []interface{}, int) {
	var clauses []string
	var args []interface{}

	if f == nil {
		return clauses, args, argIndex
	}

	if f.Price != nil {
		switch f.PriceOp {
		case model.PriceOpUnder:
			clauses = append(clauses, fmt.Sprintf("p.retail_price <= $%d", argIndex))
			args = append(args, *f.Price)
			argIndex++
		case model.PriceOpOver:
			clauses = append(clauses, fmt.Sprintf("p.retail_price >= $%d", argIndex))
			args = append(args, *f.Price)
			argIndex++
		case model.PriceOpExact:
			clauses = append(clauses, fmt.Sprintf("p.retail_price BETWEEN $%d AND $%d", argIndex, argIndex+1))
			args = append(args, *f.Price-0.01, *f.Price+0.01)
			argIndex += 2
		}
	}

	if f.Department != nil {
		clauses = append(clauses, fmt.Sprintf("p.department = $%d", argIndex))
		args = append(args, *f.Department)
		argIndex++
	}

	if f.Size != nil {
		clauses = append(clauses, fmt.Sprintf("LOWER(p.name) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(*f.Size)+"%")
		argIndex++
	}

	if f.Category != nil {
		clauses = append(clauses, fmt.Sprintf("LOWER(p.name) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(*f.Category)+"%")
		argIndex++
	}

	if f.Product != nil {
		clauses = append(clauses, fmt.Sprintf("LOWER(p.name) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(*f.Product)+"%")
		argIndex++
	}

	return clauses, args, argIndex
}

// SearchProducts performs the generic filtered catalog search.
func (r *PostgresRepository) SearchProducts(ctx context.Context, filters *model.FilterSet, limit int) ([]model.Product, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	clauses, clauseArgs, argIndex := productFilterClauses(filters, argIndex)
	whereClauses = append(whereClauses, clauses...)
	args = append(args, clauseArgs...)

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN distribution_centers dc
		  ON p.distribution_center_id = dc.id
		WHERE %s
		LIMIT $%d
	`, productColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

// FindProductsMatching returns distinct products whose name matches either
// comparison subject by substring.
func (r *PostgresRepository) FindProductsMatching(ctx context.Context, nameA, nameB string) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (p.id) %s
		FROM products p
		LEFT JOIN distribution_centers dc
		  ON p.distribution_center_id = dc.id
		WHERE LOWER(p.name) LIKE $1
		   OR LOWER(p.name) LIKE $2
		ORDER BY p.id
	`, productColumns)

	var products []model.Product
	err := r.db.SelectContext(ctx, &products, query,
		"%"+strings.ToLower(nameA)+"%",
		"%"+strings.ToLower(nameB)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find products for comparison: %w", err)
	}

	return products, nil
}

// ProductsInStore lists a store's products ordered by price ascending.
func (r *PostgresRepository) ProductsInStore(ctx context.Context, storeID int64, limit int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN distribution_centers dc
		  ON p.distribution_center_id = dc.id
		WHERE dc.id = $1
		ORDER BY p.retail_price ASC
		LIMIT $2
	`, productColumns)

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, storeID, limit); err != nil {
		return nil, fmt.Errorf("failed to list store products: %w", err)
	}

	return products, nil
}

// NearestStores returns stores ordered by ascending distance from the given
// coordinates.
func (r *PostgresRepository) NearestStores(ctx context.Context, lat, lng float64, limit int) ([]model.Store, error) {
	query := fmt.Sprintf(`
		SELECT id, name, latitude, longitude,
		       %s AS distance_km
		FROM distribution_centers
		WHERE latitude IS NOT NULL
		  AND longitude IS NOT NULL
		ORDER BY distance_km ASC
		LIMIT $3
	`, distanceKM("distribution_centers"))

	var stores []model.Store
	if err := r.db.SelectContext(ctx, &stores, query, lat, lng, limit); err != nil {
		return nil, fmt.Errorf("failed to find nearest stores: %w", err)
	}

	return stores, nil
}

// NearestStoresMatching keeps only stores carrying at least one product
// matching the query's filters, ordered by ascending distance.
func (r *PostgresRepository) NearestStoresMatching(ctx context.Context, lat, lng float64, q *model.StoreQuery) ([]model.Store, error) {
	whereClauses := []string{
		"dc.latitude IS NOT NULL",
		"dc.longitude IS NOT NULL",
	}
	args := []interface{}{lat, lng}
	argIndex := 3

	clauses, clauseArgs, argIndex := productFilterClauses(&q.FilterSet, argIndex)
	whereClauses = append(whereClauses, clauses...)
	args = append(args, clauseArgs...)

	query := fmt.Sprintf(`
		SELECT dc.id, dc.name, dc.latitude, dc.longitude,
		       %s AS distance_km
		FROM distribution_centers dc
		JOIN products p
		  ON p.distribution_center_id = dc.id
		WHERE %s
		GROUP BY dc.id
		ORDER BY distance_km
		LIMIT $%d
	`, distanceKM("dc"), strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, q.Limit)

	var stores []model.Store
	if err := r.db.SelectContext(ctx, &stores, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find matching stores: %w", err)
	}

	return stores, nil
}

// CheapestStores orders stores by their cheapest item's price, then by
// distance.
func (r *PostgresRepository) CheapestStores(ctx context.Context, lat, lng float64, limit int) ([]model.Store, error) {
	query := fmt.Sprintf(`
		SELECT dc.id, dc.name, dc.latitude, dc.longitude,
		       MIN(p.retail_price) AS cheapest_price,
		       %s AS distance_km
		FROM distribution_centers dc
		JOIN products p
		  ON p.distribution_center_id = dc.id
		WHERE dc.latitude IS NOT NULL
		  AND dc.longitude IS NOT NULL
		GROUP BY dc.id
		ORDER BY cheapest_price ASC, distance_km ASC
		LIMIT $3
	`, distanceKM("dc"))

	var stores []model.Store
	if err := r.db.SelectContext(ctx, &stores, query, lat, lng, limit); err != nil {
		return nil, fmt.Errorf("failed to find cheapest stores: %w", err)
	}

	return stores, nil
}

// StoreDetails aggregates a single store's inventory figures. Returns nil
// when the store does not exist.
func (r *PostgresRepository) StoreDetails(ctx context.Context, storeID int64) (*model.StoreDetails, error) {
	query := `
		SELECT dc.id, dc.name, dc.latitude, dc.longitude,
		       COUNT(p.id) AS product_count,
		       MIN(p.retail_price) AS cheapest_price,
		       MAX(p.retail_price) AS most_expensive_price
		FROM distribution_centers dc
		LEFT JOIN products p
		  ON p.distribution_center_id = dc.id
		WHERE dc.id = $1
		GROUP BY dc.id
	`

	var details model.StoreDetails
	if err := r.db.GetContext(ctx, &details, query, storeID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store details: %w", err)
	}

	return &details, nil
}

// GetUser retrieves a single user row. Returns nil when the user does not
// exist.
func (r *PostgresRepository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, first_name, last_name, email, age, gender, state,
		       street_address, postal_code, city, country,
		       latitude, longitude, traffic_source, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
