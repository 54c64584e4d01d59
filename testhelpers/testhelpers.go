// Package testhelpers provides utilities for testing the PocketBase-based
// application.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"

	"gblcortedobra/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary
// directory. It bootstraps the app and runs collections.Setup to create
// all tables. The temporary directory is cleaned up automatically when
// the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedDefaults loads the startup seed data (material rates, admin user).
func SeedDefaults(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed defaults: %v", err)
	}
}

// CreateTestClient creates a client record with the given name.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_person", "Contato Teste")
	record.Set("phone", "(11) 99999-0000")
	record.Set("email", "teste@example.com")
	record.Set("status", "Ativo")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record with the given name, price
// and stock.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name string, price float64, stock int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("price", price)
	record.Set("unit", "un")
	record.Set("stock", stock)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestOrder creates an order record linked to a client.
func CreateTestOrder(t *testing.T, app *pocketbase.PocketBase, clientID, number, material, value string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("orders")
	if err != nil {
		t.Fatalf("failed to find orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("order_number", number)
	record.Set("client", clientID)
	record.Set("material", material)
	record.Set("thickness", "3mm")
	record.Set("width", 1000.0)
	record.Set("length", 2000.0)
	record.Set("quantity", 5)
	record.Set("value", value)
	record.Set("status", "Aguardando")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order: %v", err)
	}

	return record
}

// CreateTestUser creates an operator account with a bcrypt-hashed
// password.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, username, password, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("system_users")
	if err != nil {
		t.Fatalf("failed to find system_users collection: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("password_hash", string(hash))
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
