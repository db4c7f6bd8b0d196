package storagetesting

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/table"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Products) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Products, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Products.INSERT(table.Products.AllColumns.Except(table.Products.ID)).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertSnapshots is a helper test function to insert price history rows.
func InsertSnapshots(t *testing.T, exc qrm.Executable, snapshots ...pgmodels.PriceHistory) {
	t.Helper()

	if len(snapshots) == 0 {
		return
	}

	toInsert := make([]pgmodels.PriceHistory, 0, len(snapshots))
	toInsert = append(toInsert, snapshots...)

	_, err := table.PriceHistory.INSERT(table.PriceHistory.AllColumns.Except(table.PriceHistory.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert snapshots", err)
	}
}

// InsertChanges is a helper test function to insert price changes.
func InsertChanges(t *testing.T, exc qrm.Executable, changes ...pgmodels.PriceChanges) {
	t.Helper()

	if len(changes) == 0 {
		return
	}

	toInsert := make([]pgmodels.PriceChanges, 0, len(changes))
	toInsert = append(toInsert, changes...)

	_, err := table.PriceChanges.INSERT(table.PriceChanges.AllColumns.Except(table.PriceChanges.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert changes", err)
	}
}

// InsertUsers is a helper test function to insert users.
func InsertUsers(t *testing.T, exc qrm.Executable, users ...pgmodels.Users) {
	t.Helper()

	if len(users) == 0 {
		return
	}

	toInsert := make([]pgmodels.Users, 0, len(users))
	toInsert = append(toInsert, users...)

	_, err := table.Users.INSERT(table.Users.AllColumns.Except(table.Users.ID)).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert users", err)
	}
}

// InsertPreferences is a helper test function to insert alert preferences.
func InsertPreferences(t *testing.T, exc qrm.Executable, prefs ...pgmodels.AlertPreferences) {
	t.Helper()

	if len(prefs) == 0 {
		return
	}

	toInsert := make([]pgmodels.AlertPreferences, 0, len(prefs))
	toInsert = append(toInsert, prefs...)

	_, err := table.AlertPreferences.INSERT(table.AlertPreferences.AllColumns.Except(table.AlertPreferences.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert alert preferences", err)
	}
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Products {
	t.Helper()

	products := []pgmodels.Products{}
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(table.Products.ID.IS_NOT_NULL()).
		ORDER_BY(table.Products.ProductID.ASC(), table.Products.Source.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProduct is a helper test function to get one product by its key.
func GetProduct(t *testing.T, queryable qrm.Queryable, productID, source string) *pgmodels.Products {
	t.Helper()

	var product pgmodels.Products
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(pg.AND(
			table.Products.ProductID.EQ(pg.String(productID)),
			table.Products.Source.EQ(pg.String(source)),
		)).
		Query(queryable, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil
	}

	if err != nil {
		t.Fatal("can't get product", err)
	}

	return &product
}

// GetSnapshots is a helper test function to get all price history rows.
func GetSnapshots(t *testing.T, queryable qrm.Queryable) []pgmodels.PriceHistory {
	t.Helper()

	snapshots := []pgmodels.PriceHistory{}
	err := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(table.PriceHistory.ID.IS_NOT_NULL()).
		ORDER_BY(table.PriceHistory.ID.ASC()).
		Query(queryable, &snapshots)
	if err != nil {
		t.Fatal("can't get snapshots", err)
	}

	return snapshots
}

// GetChanges is a helper test function to get all price changes.
func GetChanges(t *testing.T, queryable qrm.Queryable) []pgmodels.PriceChanges {
	t.Helper()

	changes := []pgmodels.PriceChanges{}
	err := table.PriceChanges.SELECT(table.PriceChanges.AllColumns).
		WHERE(table.PriceChanges.ID.IS_NOT_NULL()).
		ORDER_BY(table.PriceChanges.ID.ASC()).
		Query(queryable, &changes)
	if err != nil {
		t.Fatal("can't get changes", err)
	}

	return changes
}

// GetPreferences is a helper test function to get all alert preferences.
func GetPreferences(t *testing.T, queryable qrm.Queryable) []pgmodels.AlertPreferences {
	t.Helper()

	prefs := []pgmodels.AlertPreferences{}
	err := table.AlertPreferences.SELECT(table.AlertPreferences.AllColumns).
		WHERE(table.AlertPreferences.ID.IS_NOT_NULL()).
		ORDER_BY(table.AlertPreferences.ID.ASC()).
		Query(queryable, &prefs)
	if err != nil {
		t.Fatal("can't get alert preferences", err)
	}

	return prefs
}

// GetAlertHistory is a helper test function to get all sent alerts.
func GetAlertHistory(t *testing.T, queryable qrm.Queryable) []pgmodels.AlertHistory {
	t.Helper()

	sent := []pgmodels.AlertHistory{}
	err := table.AlertHistory.SELECT(table.AlertHistory.AllColumns).
		WHERE(table.AlertHistory.ID.IS_NOT_NULL()).
		ORDER_BY(table.AlertHistory.ID.ASC()).
		Query(queryable, &sent)
	if err != nil {
		t.Fatal("can't get alert history", err)
	}

	return sent
}

// CleanupData is a helper test function to delete all stored data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.AlertHistory.DELETE().WHERE(table.AlertHistory.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete alert history data", err)
	}

	_, err = table.AlertPreferences.DELETE().WHERE(table.AlertPreferences.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete alert preferences data", err)
	}

	_, err = table.Users.DELETE().WHERE(table.Users.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete users data", err)
	}

	_, err = table.PriceChanges.DELETE().WHERE(table.PriceChanges.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete price changes data", err)
	}

	_, err = table.PriceHistory.DELETE().WHERE(table.PriceHistory.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete price history data", err)
	}

	_, err = table.Products.DELETE().WHERE(table.Products.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}
}
