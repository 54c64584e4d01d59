package services

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func rosterEntries(n int) []RosterEntry {
	entries := make([]RosterEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, RosterEntry{
			Name:          fmt.Sprintf("Cliente %02d", i+1),
			ContactPerson: "Maria Souza",
			Phone:         "(11) 99999-0000",
			Email:         "contato@cliente.com.br",
			Status:        "Ativo",
			RegisteredAt:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		})
	}
	return entries
}

func TestComposeClientRosterPDF_Empty(t *testing.T) {
	data, err := ComposeClientRosterPDF(DefaultCompanyInfo(), nil, time.Now())
	if err != nil {
		t.Fatalf("ComposeClientRosterPDF failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	if got := countPDFPages(data); got != 1 {
		t.Errorf("empty roster should stay on one page, got %d", got)
	}
}

func TestComposeClientRosterPDF_BreaksIntoPages(t *testing.T) {
	few, err := ComposeClientRosterPDF(DefaultCompanyInfo(), rosterEntries(3), time.Now())
	if err != nil {
		t.Fatalf("ComposeClientRosterPDF failed: %v", err)
	}
	many, err := ComposeClientRosterPDF(DefaultCompanyInfo(), rosterEntries(25), time.Now())
	if err != nil {
		t.Fatalf("ComposeClientRosterPDF failed: %v", err)
	}

	if got := countPDFPages(few); got != 1 {
		t.Errorf("3 clients should fit on one page, got %d", got)
	}
	if got := countPDFPages(many); got < 2 {
		t.Errorf("25 clients should overflow onto extra pages, got %d", got)
	}
}

func TestComposeClientRosterPDF_OptionalLines(t *testing.T) {
	bare := []RosterEntry{{
		Name:          "Cliente Sem Contato",
		ContactPerson: "N/A",
		Status:        "Inativo",
		RegisteredAt:  time.Now(),
	}}

	withAll, err := ComposeClientRosterPDF(DefaultCompanyInfo(), rosterEntries(1), time.Now())
	if err != nil {
		t.Fatalf("ComposeClientRosterPDF failed: %v", err)
	}
	withoutContacts, err := ComposeClientRosterPDF(DefaultCompanyInfo(), bare, time.Now())
	if err != nil {
		t.Fatalf("ComposeClientRosterPDF failed: %v", err)
	}

	if len(withoutContacts) >= len(withAll) {
		t.Error("skipping phone and email lines should produce a smaller document")
	}
}

func TestRosterPDFFilename(t *testing.T) {
	d := time.Date(2025, time.September, 3, 18, 45, 0, 0, time.UTC)
	if got := RosterPDFFilename(d); got != "Relatorio_Clientes_2025-09-03.pdf" {
		t.Errorf("RosterPDFFilename = %q, want %q", got, "Relatorio_Clientes_2025-09-03.pdf")
	}
}
