package services

// CompanyInfo holds the letterhead details printed on every generated
// document. Injected into the composers so layouts stay testable with
// arbitrary fixtures.
type CompanyInfo struct {
	Name    string
	Tagline string
	Address string
	Phones  string
	Email   string
}

// DefaultCompanyInfo returns the GBL letterhead.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "GBL CORTE E DOBRA",
		Tagline: "Corte e Dobra de Chapas Metálicas",
		Address: "Rua John Speers nº 1370 - Pq. do Carmo - São Paulo/SP",
		Phones:  "Tel: (11) 2521-2233 | (11) 94884-8301",
		Email:   "contato@gblcortedobra.com.br",
	}
}
