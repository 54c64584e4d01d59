package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

// Material rates charged per square meter of cut sheet. Seeded once; rate
// changes afterwards are manual and never reprice existing orders.
var defaultMaterialRates = []struct {
	name      string
	unitPrice float64
}{
	{"Aço Carbono", 25.00},
	{"Aço Galvanizado", 32.00},
	{"Aço Inox", 85.00},
	{"Alumínio", 45.00},
	{"Ferro", 18.00},
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Seed populates the material rate table and the initial operator account
// when the respective collections are empty.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedMaterialRates(app); err != nil {
		return fmt.Errorf("seed material rates: %w", err)
	}
	if err := seedAdminUser(app); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

func seedMaterialRates(app *pocketbase.PocketBase) error {
	existing, err := app.FindAllRecords("material_rates")
	if err != nil {
		return fmt.Errorf("check material_rates: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("material_rates")
	if err != nil {
		return fmt.Errorf("find material_rates collection: %w", err)
	}

	for _, rate := range defaultMaterialRates {
		record := core.NewRecord(col)
		record.Set("name", rate.name)
		record.Set("unit_price", rate.unitPrice)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("save rate %q: %w", rate.name, err)
		}
	}

	log.Printf("seed: created %d material rates", len(defaultMaterialRates))
	return nil
}

func seedAdminUser(app *pocketbase.PocketBase) error {
	existing, err := app.FindAllRecords("system_users")
	if err != nil {
		return fmt.Errorf("check system_users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("system_users")
	if err != nil {
		return fmt.Errorf("find system_users collection: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("username", defaultAdminUsername)
	record.Set("password_hash", string(hash))
	record.Set("role", "admin")
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save admin user: %w", err)
	}

	log.Printf("seed: created default admin user %q, change the password after first login", defaultAdminUsername)
	return nil
}
